package service

import "errors"

var (
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrPaymentNotSucceeded = errors.New("payment intent has not succeeded")
)
