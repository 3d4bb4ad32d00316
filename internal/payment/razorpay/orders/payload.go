package orders

import (
	"strconv"
	"time"
)

// DefaultCurrency is used when the caller sends none.
const DefaultCurrency = "INR"

// MinimumAmount is the smallest order Razorpay accepts, in paise.
const MinimumAmount = 100

func getDefaultCurrency() string {
	return DefaultCurrency
}

func getDefaultReceipt(now time.Time) string {
	return "receipt_" + strconv.FormatInt(now.UnixMilli(), 10)
}
