package cmd

import "fmt"

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CinetPayAPIKey    string
	CinetPaySiteID    string
	CinetPayBaseURL   string
	CinetPayNotifyURL string
	CinetPayReturnURL string

	SESRegion    string
	SESFromEmail string
}

// PostgresDSN renders the connection string for the gorm postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
