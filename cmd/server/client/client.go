// Package client provides commands that exercise a running pokemon-api server
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	// Connection flags
	serverAddr     string
	grpcServerAddr string
	timeout        time.Duration

	// Paging flags shared by the list commands
	skip  int
	limit int
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the pokemon API",
	Long:  `Client commands let you try the pokemon API by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8000", "HTTP server base URL")
	ClientCmd.PersistentFlags().StringVar(&grpcServerAddr, "grpc-server", "localhost:50051", "gRPC health server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Trainer commands
	ClientCmd.AddCommand(createTrainerCmd)
	ClientCmd.AddCommand(getTrainerCmd)
	ClientCmd.AddCommand(listTrainersCmd)
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(addPokemonCmd)

	// Pokemon and item commands
	ClientCmd.AddCommand(listItemsCmd)
	ClientCmd.AddCommand(listPokemonsCmd)
	ClientCmd.AddCommand(getPokemonCmd)
	ClientCmd.AddCommand(battleCmd)

	ClientCmd.AddCommand(healthCmd)
}

// apiError is a non-2xx response from the server
type apiError struct {
	Status int
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func (e *apiError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
}

// doJSON sends body (if any) as JSON and decodes the response into out
func doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := strings.TrimRight(serverAddr, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr) // nolint:errcheck // status alone is enough
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// pageQuery builds skip/limit query values, omitting unset ones
func pageQuery() url.Values {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// requestContext bounds a command by the --timeout flag
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

// createConnection creates a gRPC connection to the health server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(grpcServerAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}
