// Togetherchat is a small command line host for the Together AI chat
// provider. It loads a YAML configuration (optional — without one a plain
// Together provider is used), initializes the provider, and either lists
// the discovered models or sends a single prompt and renders the reply.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"

	"github.com/germanamz/togetherchat/pkg/chats/chat"
	"github.com/germanamz/togetherchat/pkg/chats/message"
	"github.com/germanamz/togetherchat/pkg/chats/role"
	"github.com/germanamz/togetherchat/pkg/engine"
	"github.com/germanamz/togetherchat/pkg/providers/together"
)

func main() {
	configPath := flag.String("config", "togetherchat.yaml", "path to configuration file (ignored if missing)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	providerName := flag.String("provider", "", "provider to use (defaults to the configured entry provider)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *providerName, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. If the file does not exist
// it is silently ignored so that .env files remain optional.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func run(configPath, providerName string, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: togetherchat [flags] models | chat <prompt>")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	switch args[0] {
	case "models":
		return runModels(eng, providerName)
	case "chat":
		if len(args) < 2 {
			return errors.New("usage: togetherchat chat <prompt>")
		}
		return runChat(eng, providerName, strings.Join(args[1:], " "))
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// loadConfig reads the configuration file. A missing file is not an error:
// the binary falls back to a single Together provider configured entirely
// from the environment.
func loadConfig(path string) (engine.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return engine.Config{
			Providers: []engine.ProviderConfig{
				{Name: together.Kind, Kind: together.Kind},
			},
		}, nil
	}

	return engine.LoadConfig(path)
}

// runModels prints the provider's resolved model registry.
func runModels(eng *engine.Engine, providerName string) error {
	d, err := eng.Descriptor(providerName)
	if err != nil {
		return err
	}

	caps := d.Capabilities()

	fmt.Println(titleStyle.Render(d.Name() + " models"))
	for _, name := range caps.Models.Names() {
		line := modelStyle.Render(name) + dimStyle.Render(fmt.Sprintf("  (max tokens %d)", caps.Models[name].MaxTokens))
		if name == d.DefaultModel() {
			line += dimStyle.Render("  [default]")
		}
		fmt.Println(line)
	}

	return nil
}

// runChat sends one prompt to the provider and renders the markdown reply.
func runChat(eng *engine.Engine, providerName, prompt string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	completer, err := eng.Completer(providerName)
	if err != nil {
		return err
	}

	c := chat.New(message.NewText("user", role.User, prompt))

	reply, err := completer.Complete(ctx, c)
	if err != nil {
		return err
	}

	fmt.Println(renderMarkdown(reply.TextContent()))
	return nil
}

// renderMarkdown renders the reply for the terminal, falling back to the
// raw text if the renderer cannot be constructed.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}
