package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	grpcadapter "github.com/andrescamacho/shipfix-go/internal/adapters/grpc"
	"github.com/andrescamacho/shipfix-go/internal/adapters/httpapi"
)

// newHealthCommand creates the health command
func newHealthCommand(a *app) *cobra.Command {
	var (
		baseURL  string
		grpcAddr string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check shipfix-api health",
		Long: `Verify that shipfix-api is running and responsive.

Without --url the address comes from server.host and server.port.
--grpc additionally probes the gRPC health service.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				host := cfg.Server.Host
				if host == "" || host == "0.0.0.0" {
					host = "localhost"
				}
				baseURL = fmt.Sprintf("http://%s:%d", host, cfg.Server.Port)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			health, err := checkHTTPHealth(ctx, baseURL)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✓ API is healthy")
			fmt.Fprintf(out, "  Status:  %s\n", health.Status)
			fmt.Fprintf(out, "  Service: %s\n", health.Service)

			if grpcAddr != "" {
				client, err := grpcadapter.NewHealthClient(grpcAddr)
				if err != nil {
					return err
				}
				defer client.Close()

				status, err := client.Check(ctx, grpcadapter.ServiceName)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  gRPC:    %s\n", status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "Base URL of shipfix-api, e.g. http://localhost:4000")
	cmd.Flags().StringVar(&grpcAddr, "grpc", "", "gRPC health address, e.g. localhost:4001")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")

	return cmd
}

func checkHTTPHealth(ctx context.Context, baseURL string) (*httpapi.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+"/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var health httpapi.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &health, nil
}
