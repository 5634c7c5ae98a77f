package cfg

import (
	"fmt"

	"chanarr/internal/domain/consts"
	"chanarr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags binds every user-facing flag to its Viper key.
func initProgramFlags(rootCmd *cobra.Command) error {
	// Output and content selection
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", "downloads", "Directory to download into")
	rootCmd.PersistentFlags().String(keys.VideoTypes, consts.ContentAll, "Content to fetch from a channel (all, videos, shorts, streams)")

	// Audio handling
	rootCmd.PersistentFlags().Bool(keys.AudioOnly, false, "Fetch the best audio stream only, skipping video downloads")
	rootCmd.PersistentFlags().StringP(keys.AudioFormat, "f", consts.AudioMP3, "Audio output format (mp3, wav, aac, flac)")
	rootCmd.PersistentFlags().StringP(keys.Quality, "q", "best", "Video format selector passed to yt-dlp when not audio-only")
	rootCmd.PersistentFlags().Bool(keys.KeepVideo, false, "Keep the video container after audio extraction")

	// Throttling and limits
	rootCmd.PersistentFlags().Int(keys.SleepInterval, 0, "Minimum seconds to sleep between items")
	rootCmd.PersistentFlags().Int(keys.MaxSleepInterval, 0, "Maximum seconds to sleep between items")
	rootCmd.PersistentFlags().String(keys.RateLimit, "", "Download rate limit (e.g. 500K, 2M)")
	rootCmd.PersistentFlags().Int(keys.MaxDownloads, 0, "Stop after this many items (0 = unlimited)")

	// Date window
	rootCmd.PersistentFlags().String(keys.DateAfter, "", "Only download items uploaded on or after this date")
	rootCmd.PersistentFlags().String(keys.DateBefore, "", "Only download items uploaded on or before this date")

	// Sidecar toggles
	rootCmd.PersistentFlags().Bool(keys.NoSubs, false, "Skip subtitle downloads")
	rootCmd.PersistentFlags().Bool(keys.NoMetadata, false, "Skip per-item metadata JSON")

	// Retries, cookies, history
	rootCmd.PersistentFlags().Int(keys.DLRetries, 0, "Retry attempts per item (0 = default)")
	rootCmd.PersistentFlags().String(keys.CookieSource, "", "Browser to pull cookies from (e.g. firefox, chrome)")
	rootCmd.PersistentFlags().Bool(keys.Redownload, false, "Re-download items already recorded as completed")

	// Program behavior
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Config file to load defaults from")
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 to 5)")

	boundKeys := []string{
		keys.OutputDir, keys.VideoTypes,
		keys.AudioOnly, keys.AudioFormat, keys.Quality, keys.KeepVideo,
		keys.SleepInterval, keys.MaxSleepInterval, keys.RateLimit, keys.MaxDownloads,
		keys.DateAfter, keys.DateBefore,
		keys.NoSubs, keys.NoMetadata,
		keys.DLRetries, keys.CookieSource, keys.Redownload,
		keys.ConfigFile, keys.DebugLevel,
	}
	for _, key := range boundKeys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", key, err)
		}
	}

	return nil
}
