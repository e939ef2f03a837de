package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Supabase Storage
	SupabaseProjectID  string `envconfig:"SUPABASE_PROJECT_ID"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_KEY"`
	StorageBucketName  string `envconfig:"STORAGE_BUCKET_NAME" default:"user-activity-photos"`

	// Notification queue
	RedisAddr         string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	WorkerConcurrency int    `envconfig:"WORKER_CONCURRENCY" default:"5"`

	// Outbound mail
	MailAPIURL string `envconfig:"MAIL_API_URL"`
	MailAPIKey string `envconfig:"MAIL_API_KEY"`
	MailFrom   string `envconfig:"MAIL_FROM" default:"no-reply@questclub.app"`
}
