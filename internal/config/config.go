package config

import "time"

// Config holds runtime configuration for the service and the uploader job.
type Config struct {
	Port            string
	Sources         []string
	UpstreamTimeout time.Duration
	NHL             NHLConfig
	WHL             HockeyTechConfig
	AHL             HockeyTechConfig
	NLL             NLLConfig
	Storage         StorageConfig
	Metrics         MetricsConfig
}

// NHLConfig overrides the NHL club-schedule feed location.
type NHLConfig struct {
	ScheduleURL string
}

// HockeyTechConfig overrides one HockeyTech modulekit feed location.
type HockeyTechConfig struct {
	FeedURL string
}

// NLLConfig carries the Champion Data endpoints and client credentials.
type NLLConfig struct {
	BaseURL      string
	TokenURL     string
	Audience     string
	ClientID     string
	ClientSecret string
	LeagueID     int
	LevelID      int
	SeasonID     int
}

// StorageConfig names the object-storage target for the uploader job.
type StorageConfig struct {
	Bucket string
	Key    string
	Region string
}

// MetricsConfig controls telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Sources:         listEnvOrDefault(envSources, defaultSources),
		UpstreamTimeout: durationEnvOrDefault(envHTTPTimeout, 10*time.Second),
		NHL: NHLConfig{
			ScheduleURL: envOrDefault(envNHLScheduleURL, ""),
		},
		WHL: HockeyTechConfig{
			FeedURL: envOrDefault(envWHLFeedURL, ""),
		},
		AHL: HockeyTechConfig{
			FeedURL: envOrDefault(envAHLFeedURL, ""),
		},
		NLL: NLLConfig{
			BaseURL:      envOrDefault(envNLLBaseURL, ""),
			TokenURL:     envOrDefault(envNLLTokenURL, ""),
			Audience:     envOrDefault(envNLLAudience, ""),
			ClientID:     envOrDefault(envNLLClientID, ""),
			ClientSecret: envOrDefault(envNLLClientSecret, ""),
			LeagueID:     intEnvOrDefault(envNLLLeagueID, 0),
			LevelID:      intEnvOrDefault(envNLLLevelID, 0),
			SeasonID:     intEnvOrDefault(envNLLSeasonID, 0),
		},
		Storage: StorageConfig{
			Bucket: envOrDefault(envBucket, defaultBucket),
			Key:    envOrDefault(envKey, defaultKey),
			Region: envOrDefault(envRegion, defaultRegion),
		},
		Metrics: loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, ""),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
