package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/cache"
)

// cacheCommand groups the subcommands that manage the render cache under
// $XDG_CACHE_HOME/sigil.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the cache location and size",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return withFileCache(cacheInfo) },
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Remove expired render artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withFileCache(func(fc *cache.FileCache) error {
					n, err := fc.Prune()
					if err != nil {
						return err
					}
					printSuccess("Pruned %d expired entries", n)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached render artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withFileCache(func(fc *cache.FileCache) error {
					n, err := fc.Clear()
					if err != nil {
						return err
					}
					printSuccess("Cleared %d cached entries", n)
					printDetail("Directory: %s", fc.Dir())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			},
		},
	)
	return cmd
}

func withFileCache(fn func(*cache.FileCache) error) error {
	dir, err := cacheDir()
	if err != nil {
		return fmt.Errorf("get cache dir: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return err
	}
	return fn(fc)
}

func cacheInfo(fc *cache.FileCache) error {
	st, err := fc.Stats()
	if err != nil {
		return err
	}
	printKeyValue("Directory", fc.Dir())
	printKeyValue("Entries", strconv.Itoa(st.Entries))
	printKeyValue("Expired", strconv.Itoa(st.Expired))
	printKeyValue("Size", formatBytes(st.Bytes))
	if st.Expired > 0 {
		printNextStep("Remove expired entries", appName+" cache prune")
	}
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
