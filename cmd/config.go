package cmd

import "time"

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RabbitURL  string

	// StaleOrderWindow is how long a pending bulk order may wait for a chef
	// before the background sweep cancels it.
	StaleOrderWindow time.Duration
}
