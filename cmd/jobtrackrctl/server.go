package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/db"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/server/endpoints"
	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the JobTrackr application server",
	Long: `Run the JobTrackr application server

To run the server requires the environment variables JOBTRACKR_TOKEN_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		tokenKeyB64, ok := os.LookupEnv("JOBTRACKR_TOKEN_KEY")
		if !ok {
			fmt.Fprintln(os.Stderr, "JOBTRACKR_TOKEN_KEY environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		tokenKey, err := base64.StdEncoding.DecodeString(tokenKeyB64)
		if err != nil {
			fmt.Println("Bad JOBTRACKR_TOKEN_KEY:", err)
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Println("Unable to load configuration:", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}

		issuer, err := token.NewIssuer(tokenKey, cfg.UserTokenTTL())
		if err != nil {
			fmt.Println("Unable to initiate token issuer:", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, issuer, cfg, host, port)

		endpoints.RegisterAll(s)

		watchConfig, _ := cmd.Flags().GetBool("watch-config")
		if watchConfig {
			if err := watchConfigFile(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to watch config file: %v\n", err)
				os.Exit(1)
			}
		}

		// SIGHUP also triggers a config reload, for "configuration apply"
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		go func() {
			for range sigChan {
				log.Println("Received SIGHUP, reloading configuration...")
				reloadConfig(cfg)
			}
		}()

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload configuration when the config file changes")
}

// watchConfigFile reloads the running configuration whenever the config
// file is rewritten. Editors and config management tools often replace the
// file rather than write in place, so creates count as changes too.
func watchConfigFile(cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(cfg.ConfigFilePath()); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch file %s: %w", cfg.ConfigFilePath(), err)
	}

	log.Printf("Watching %s for configuration changes\n", cfg.ConfigFilePath())

	go func() {
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					log.Printf("[%s] Config file modified, reloading...\n", time.Now().Format(time.RFC3339))
					reloadConfig(cfg)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}()

	return nil
}

func reloadConfig(cfg *config.Config) {
	newCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reloading configuration: %v\n", err)
		return
	}
	if err := newCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Reloaded configuration is invalid, keeping current: %v\n", err)
		return
	}
	cfg.Apply(newCfg)
	log.Println("Configuration reloaded")
}
