package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	otp := rand.Intn(1000000)
	return fmt.Sprintf("%06d", otp)
}
