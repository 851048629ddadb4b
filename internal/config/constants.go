package config

const (
	envPort         = "PORT"
	envSources      = "SOURCES"
	envHTTPTimeout  = "UPSTREAM_HTTP_TIMEOUT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envNHLScheduleURL = "NHL_SCHEDULE_URL"
	envWHLFeedURL     = "WHL_FEED_URL"
	envAHLFeedURL     = "AHL_FEED_URL"

	envNLLBaseURL      = "NLL_API_BASE_URL"
	envNLLTokenURL     = "NLL_TOKEN_URL"
	envNLLAudience     = "NLL_API_AUDIENCE"
	envNLLClientID     = "NLL_CLIENT_ID"
	envNLLClientSecret = "NLL_CLIENT_SECRET"
	envNLLLeagueID     = "NLL_LEAGUE_ID"
	envNLLLevelID      = "NLL_LEVEL_ID"
	envNLLSeasonID     = "NLL_SEASON_ID"

	envBucket = "S3_BUCKET_NAME"
	envKey    = "S3_KEY"
	envRegion = "AWS_REGION"

	defaultPort        = "3000"
	defaultSources     = "nhl,whl,ahl,nll"
	defaultMetricsPort = "9090"

	defaultBucket = "csec-schedule-api"
	defaultKey    = "schedule.json"
	defaultRegion = "ca-central-1"
)
