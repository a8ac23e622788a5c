// Package courier contains the Courier aggregate.
//
// A courier is the person who physically moves parcels. The aggregate keeps
// identity and availability only: assignment links live on the parcel side,
// and GPS pings are recorded by the location tracker outside this aggregate.
package courier
