// Package models holds the GORM persistence models. They mirror the domain
// aggregates but carry database tags and belong to the persistence layer
// only; repositories translate between the two with ToDomain and FromDomain.
package models
