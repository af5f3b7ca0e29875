// README: Common money value object used across modules.
package types

type Money struct {
	Amount   int64
	Currency string
}

// INR builds a rupee amount, the currency every fare in this system is quoted in.
func INR(amount int64) Money {
	return Money{Amount: amount, Currency: "INR"}
}
