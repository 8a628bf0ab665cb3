package main

import (
	"context"
	"fmt"
	"os"

	"tenancy-service/internal/infra/db"
	"tenancy-service/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var dir string
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations to the tenancy database",
	}
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "migrations", "directory holding *.sql migrations")

	rootCmd.AddCommand(
		upCmd(&dir),
		statusCmd(&dir),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
				applied, err := db.ApplyMigrations(ctx, pool, *dir)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Println("No pending migrations.")
					return nil
				}
				for _, name := range applied {
					fmt.Printf("Applied %s\n", name)
				}
				return nil
			})
		},
	}
}

func statusCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
				statuses, err := db.Status(ctx, pool, *dir)
				if err != nil {
					return err
				}
				for _, st := range statuses {
					if st.AppliedAt == nil {
						fmt.Printf("%-40s pending\n", st.Name)
						continue
					}
					fmt.Printf("%-40s applied %s\n", st.Name, st.AppliedAt.Format("2006-01-02 15:04:05"))
				}
				return nil
			})
		},
	}
}

func withPool(ctx context.Context, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, pool)
}
