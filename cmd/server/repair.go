package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

// repairEntities are the record prefixes written by the redis repositories
var repairEntities = []string{"trainer", "pokemon", "item"}

var (
	repairRedisAddr string
	repairDelete    bool
	repairTimeout   time.Duration
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find corrupted records in the redis store",
	Long: `Scan trainer, pokemon and item records in redis and report any that are not
valid JSON or whose id does not match their key. With --delete the records are
removed along with their index entries.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairRedisAddr, "redis-addr", "localhost:6379", "Redis address")
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "Delete corrupted records")
	repairCmd.Flags().DurationVar(&repairTimeout, "timeout", 5*time.Minute, "Scan timeout")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), repairTimeout)
	defer cancel()

	client, err := redisclient.NewClient(repairRedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore on exit
	}()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to connect to redis at %s", repairRedisAddr)
	}

	return repair(ctx, client, cmd.OutOrStdout(), repairDelete)
}

// repair reports corrupted records for every entity and optionally removes them
func repair(ctx context.Context, client redisclient.Client, out io.Writer, remove bool) error {
	for _, entity := range repairEntities {
		checked, corrupted, err := findCorrupted(ctx, client, entity)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: checked %d records, %d corrupted\n", entity, checked, len(corrupted))

		for _, key := range corrupted {
			fmt.Fprintf(out, "  - %s\n", key)
			if !remove {
				continue
			}
			if err := removeRecord(ctx, client, entity, key); err != nil {
				return err
			}
			fmt.Fprintf(out, "    deleted\n")
		}
	}
	return nil
}

// findCorrupted scans {entity}:{id} keys, skipping sequence and index keys
func findCorrupted(ctx context.Context, client redisclient.Client, entity string) (int, []string, error) {
	prefix := entity + ":"
	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	var checked int
	var corrupted []string
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.ParseInt(strings.TrimPrefix(key, prefix), 10, 64)
		if err != nil {
			continue
		}
		checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			return 0, nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var rec struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(data, &rec); err != nil || rec.ID != id {
			corrupted = append(corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return 0, nil, errors.Wrapf(err, "failed to scan %s records", entity)
	}

	return checked, corrupted, nil
}

// removeRecord deletes the record and drops its id from every index of the entity
func removeRecord(ctx context.Context, client redisclient.Client, entity, key string) error {
	member := strings.TrimPrefix(key, entity+":")

	indexes := []string{entity + ":index"}
	for _, pattern := range []string{entity + ":trainer:*", entity + ":name:*"} {
		iter := client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			indexes = append(indexes, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return errors.Wrapf(err, "failed to scan %s indexes", entity)
		}
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	for _, index := range indexes {
		pipe.ZRem(ctx, index, member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}
