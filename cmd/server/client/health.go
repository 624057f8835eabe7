package client

import (
	"fmt"

	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var healthService string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Query the gRPC health service",
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthService, "service", "", "Service name, empty for overall status")
}

func runHealth(cmd *cobra.Command, _ []string) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: healthService})
	if err != nil {
		return fmt.Errorf("failed to check health: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.GetStatus().String())
	return nil
}
