// Package token contains the DeliveryToken aggregate.
//
// A delivery token is the single-use QR credential that closes the last mile:
// the courier scans it at hand-over, redemption flips it exactly once, and the
// parcel moves to its delivered state. Tokens expire two hours after minting
// and expired unused ones are swept by a background job.
package token
