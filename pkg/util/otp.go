package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	otpLength = 6
	otpExpire = 10 * time.Minute
)

// GenerateOTP returns a random numeric code and its expiry time.
func GenerateOTP() (string, time.Time) {
	otp := ""
	for i := 0; i < otpLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failing means the platform entropy source is broken
			panic(fmt.Sprintf("failed to generate OTP: %v", err))
		}
		otp += n.String()
	}
	return otp, time.Now().Add(otpExpire)
}
