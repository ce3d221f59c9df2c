package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shlokavani/chandas/internal/config"
	"github.com/shlokavani/chandas/internal/core"
	"github.com/shlokavani/chandas/internal/core/catalog"
	"github.com/shlokavani/chandas/internal/llm"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [verse]",
	Short: "Identify the meter of a Sanskrit verse",
	Long: `Identify runs the deterministic prosody pipeline on the given verse (or
stdin when no argument is given) and prints the identification as JSON.
With --with-llm the configured LLM collaborator is consulted as well.`,
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().Bool("with-llm", false, "consult the configured LLM collaborator")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	verse := strings.Join(args, " ")
	if verse == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read verse from stdin: %w", err)
		}
		verse = string(data)
	}

	cfg := loadConfig(cmd)

	var client llm.ChatClient
	if withLLM, _ := cmd.Flags().GetBool("with-llm"); withLLM {
		var err error
		client, err = llm.NewClient(cmd.Context(), cfg.LLM)
		if err != nil {
			return err
		}
	}

	identifier, err := buildIdentifier(client, cfg.Prompts)
	if err != nil {
		return err
	}

	result, err := identifier.Identify(cmd.Context(), verse)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "config/config.toml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}
	return cfg
}

func buildIdentifier(client llm.ChatClient, prompts config.Prompts) (*core.Identifier, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	known, err := catalog.LoadKnownVerses()
	if err != nil {
		return nil, err
	}
	return core.New(cat, known, client, prompts, nil, zap.NewNop().Sugar()), nil
}
