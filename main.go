package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kampusku_mobile/internals/api"
	"kampusku_mobile/internals/configs"
	"kampusku_mobile/internals/route"
	"kampusku_mobile/internals/session"
)

func main() {
	configs.LoadEnv()

	v := viper.New()
	configs.BindDefaults(v)

	rootCmd := &cobra.Command{
		Use:   "kampusku",
		Short: "Klien terminal portal akademik mahasiswa",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configs.Load(v))
		},
	}

	flags := rootCmd.Flags()
	flags.String("base-url", "", "alamat API portal")
	flags.String("token-file", "", "lokasi file token sesi")
	flags.String("log-file", "", "lokasi file log klien")
	_ = v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("token_file", flags.Lookup("token-file"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(cfg configs.Config) error {
	// TUI memakai stdout, jadi log request pindah ke file.
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o700); err != nil {
		return err
	}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	sessions := session.New(cfg.TokenPath)
	client := api.New(cfg.BaseURL, cfg.HTTPTimeout, sessions, logger)

	program := tea.NewProgram(route.New(sessions, client), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
