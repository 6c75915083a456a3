package types

import "fmt"

// Business-rule errors raised by the settlement engine. All of them are
// detected before any row is written, so a caller seeing one of these can
// assume no state changed.

type UnsupportedAssetError struct {
	Symbol string
}

func (e *UnsupportedAssetError) Error() string {
	return fmt.Sprintf("unsupported stock %q", e.Symbol)
}

type InvalidOrderError struct {
	Message string
}

func (e *InvalidOrderError) Error() string {
	return e.Message
}

type InsufficientFundsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("you need $%.2f but only have $%.2f available", e.Required, e.Available)
}

type InsufficientSharesError struct {
	Available float64
	Requested float64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("you only have %g shares but trying to sell %g shares", e.Available, e.Requested)
}

type AssetNotOwnedError struct {
	Symbol string
}

func (e *AssetNotOwnedError) Error() string {
	return fmt.Sprintf("you don't own any shares of %s", e.Symbol)
}
