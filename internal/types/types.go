package types

// EntityID — идентификатор сущности. Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint64
