// Package location contains the CourierLocation entity, the append-only GPS
// trail couriers leave while carrying parcels.
package location
