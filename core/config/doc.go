// Package config provides configuration management for image-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. The configuration is immutable for a run: it is
// loaded once before orchestration begins and passed explicitly to every
// component that needs it.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Remote: content store coordinates (provider, repository, branch, bucket)
//   - Sync: posts root, extension whitelist, ledger and mirror locations
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.PostsDir)
package config
