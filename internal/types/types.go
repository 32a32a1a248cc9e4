// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности, выдаётся монотонно.
type EntityID uint64
