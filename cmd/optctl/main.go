// Package main is the example driver for the options core: a cobra CLI
// over a demo.Schema() Root, with a viper-backed config file for
// initial values and a gin HTTP server exposing a Cache as JSON — the
// Observer API (§5) refreshing concurrently with a background
// goroutine in the same process that toggles "mute".
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"optcore/internal/demo"
	"optcore/internal/option"
	"optcore/internal/optfile"
)

type rootFlags struct {
	configFile string
	includeDir string
}

func main() {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "optctl",
		Short: "Inspect and drive the hierarchical options core",
	}
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "viper config file seeding initial option values")
	rootCmd.PersistentFlags().StringVar(&flags.includeDir, "include-dir", ".", "base directory `include`-meta-option filenames resolve against")

	rootCmd.AddCommand(setCmd(flags))
	rootCmd.AddCommand(listOptionsCmd(flags))
	rootCmd.AddCommand(profileCmd(flags))
	rootCmd.AddCommand(serveCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRoot(flags *rootFlags) (*option.Root, error) {
	r, err := demo.NewRoot()
	if err != nil {
		return nil, fmt.Errorf("building schema: %w", err)
	}
	r.SetLogger(option.NewLogrusLogger(nil))
	r.SetIncludeCallback(optfile.New(flags.includeDir).Load)
	r.CreateShadow()

	if flags.configFile != "" {
		if err := seedFromViper(r, flags.configFile); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// seedFromViper reads a flat name->value config file (any format viper
// supports) and applies each key through the setter pipeline, the way
// a host might load persisted defaults before taking CLI overrides.
func seedFromViper(r *option.Root, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}
	for _, key := range v.AllKeys() {
		text := fmt.Sprint(v.Get(key))
		if err := r.Set(key, text, option.SetFromConfigFile); err != nil {
			return fmt.Errorf("config %q: %s: %w", path, key, err)
		}
	}
	return nil
}

func setCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set an option and print its committed value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := buildRoot(flags)
			if err != nil {
				return err
			}
			if err := r.Set(args[0], args[1], 0); err != nil {
				return err
			}
			e, err := r.GetEntry(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", e.Name, e.Value())
			return nil
		},
	}
}

func listOptionsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list-options",
		Short: "Print the sorted option catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := buildRoot(flags)
			if err != nil {
				return err
			}
			fmt.Print(r.ListOptions())
			return nil
		},
	}
}

func profileCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Manage named option profiles"}

	var pairs []string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a profile from a set of name=value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := buildRoot(flags)
			if err != nil {
				return err
			}
			p, err := r.AddProfile(args[0])
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				name, value, ok := splitPair(pair)
				if !ok {
					return fmt.Errorf("malformed pair %q, expected name=value", pair)
				}
				if err := r.SetProfileOption(p, name, value); err != nil {
					return err
				}
			}
			fmt.Printf("profile %q created with %d pair(s)\n", p.Name, len(p.Pairs))
			return nil
		},
	}
	addCmd.Flags().StringArrayVar(&pairs, "set", nil, "name=value pair to append, repeatable")

	applyCmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Apply a previously created profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := buildRoot(flags)
			if err != nil {
				return err
			}
			if err := r.SetProfile(args[0], 0); err != nil {
				return err
			}
			fmt.Print(r.ListOptions())
			return nil
		},
	}

	cmd.AddCommand(addCmd, applyCmd)
	return cmd
}

func splitPair(s string) (name, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

type serveFlags struct {
	addr  string
	group string
}

func serveCmd(root *rootFlags) *cobra.Command {
	sf := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose a Cache bound to --group as JSON over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(root, sf)
		},
	}
	cmd.Flags().StringVar(&sf.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&sf.group, "group", "", "group to bind the Cache to (empty = whole schema)")
	return cmd
}

func runServe(root *rootFlags, sf *serveFlags) error {
	r, err := buildRoot(root)
	if err != nil {
		return err
	}

	cache, err := r.CacheAlloc(sf.group)
	if err != nil {
		return fmt.Errorf("binding cache to group %q: %w", sf.group, err)
	}

	// A stand-in controller goroutine: periodically toggles "mute" so a
	// client polling /snapshot can observe Refresh picking up changes
	// committed concurrently with its own reads.
	go func() {
		muted := false
		for range time.Tick(2 * time.Second) {
			muted = !muted
			value := "no"
			if muted {
				value = "yes"
			}
			_ = r.Set("mute", value, 0)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.GET("/snapshot", func(c *gin.Context) {
		refreshed := cache.Refresh()
		names := cache.Opts().ListOptionNames()
		values := make(map[string]string, len(names))
		for _, name := range names {
			e, err := cache.Opts().GetEntry(name)
			if err != nil {
				continue
			}
			values[name] = e.Value()
		}
		c.JSON(http.StatusOK, gin.H{"refreshed": refreshed, "options": values})
	})

	fmt.Printf("optctl serve: listening on %s, group=%q\n", sf.addr, sf.group)
	return engine.Run(sf.addr)
}
