package config

import "os"

func IsDebug() bool {
	return os.Getenv("CAREERBOT_DEBUG") == "1"
}
