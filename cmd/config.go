package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	SendGridAPIKey string
	EmailFromName  string
	EmailFromAddr  string

	DefaultDeliveryFeeCents   int64
	SendCustomerNotifications bool
}
