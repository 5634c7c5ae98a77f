package cfg

import (
	"fmt"

	"chanarr/internal/domain/keys"
	"chanarr/internal/models"
	"chanarr/internal/parsing"
	"chanarr/internal/validation"

	"github.com/spf13/viper"
)

// BuildRequest assembles and validates the download request from the parsed
// flags and config values.
func BuildRequest() (*models.DownloadRequest, error) {
	req := &models.DownloadRequest{
		Source:      viper.GetString(keys.Source),
		ContentType: viper.GetString(keys.VideoTypes),
		AudioOnly:   viper.GetBool(keys.AudioOnly),
		AudioFormat: viper.GetString(keys.AudioFormat),
		Quality:     viper.GetString(keys.Quality),
		OutputDir:   viper.GetString(keys.OutputDir),

		SleepInterval:    viper.GetInt(keys.SleepInterval),
		MaxSleepInterval: viper.GetInt(keys.MaxSleepInterval),
		MaxDownloads:     viper.GetInt(keys.MaxDownloads),

		KeepVideo:    viper.GetBool(keys.KeepVideo),
		SkipSubs:     viper.GetBool(keys.NoSubs),
		SkipMetadata: viper.GetBool(keys.NoMetadata),

		Retries:      viper.GetInt(keys.DLRetries),
		CookieSource: viper.GetString(keys.CookieSource),
		Redownload:   viper.GetBool(keys.Redownload),
	}

	if rate := viper.GetString(keys.RateLimit); rate != "" {
		parsed, err := parsing.ParseRateLimit(rate)
		if err != nil {
			return nil, &models.ValidationError{
				Field:  keys.RateLimit,
				Reason: fmt.Sprintf("invalid rate limit %q: %v", rate, err),
			}
		}
		req.RateLimit = parsed
	}

	var err error
	if req.DateAfter, err = parsing.ParseDate(viper.GetString(keys.DateAfter)); err != nil {
		return nil, &models.ValidationError{
			Field:  keys.DateAfter,
			Reason: err.Error(),
		}
	}
	if req.DateBefore, err = parsing.ParseDate(viper.GetString(keys.DateBefore)); err != nil {
		return nil, &models.ValidationError{
			Field:  keys.DateBefore,
			Reason: err.Error(),
		}
	}

	if err := validation.ValidateRequest(req); err != nil {
		return nil, err
	}

	return req, nil
}
