package entity

import (
	"sync"

	"go-sky-shooter/internal/types"
)

// Commands — буфер отложенных структурных изменений (создание и удаление сущностей).
// Системы пишут в него во время прохода, в том числе из нескольких горутин,
// а Apply применяет всё разом в точке синхронизации.
type Commands struct {
	mu  sync.Mutex
	ops []func(*ECS)
}

// NewCommands создаёт пустой буфер.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn откладывает создание сущности. build получает уже выделенный ID.
func (c *Commands) Spawn(build func(ecs *ECS, id types.EntityID)) {
	c.push(func(ecs *ECS) {
		build(ecs, ecs.NewEntity())
	})
}

// Despawn откладывает удаление сущности. Повторное удаление безопасно.
func (c *Commands) Despawn(id types.EntityID) {
	c.push(func(ecs *ECS) {
		ecs.Despawn(id)
	})
}

// Do откладывает произвольное изменение.
func (c *Commands) Do(fn func(ecs *ECS)) {
	c.push(fn)
}

// Len — количество ожидающих команд.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ops)
}

// Apply выполняет команды в порядке записи и очищает буфер.
// Команды, добавленные во время Apply, выполняются в том же вызове.
func (c *Commands) Apply(ecs *ECS) {
	for {
		c.mu.Lock()
		ops := c.ops
		c.ops = nil
		c.mu.Unlock()
		if len(ops) == 0 {
			return
		}
		for _, op := range ops {
			op(ecs)
		}
	}
}

// Discard отбрасывает ожидающие команды без выполнения.
func (c *Commands) Discard() {
	c.mu.Lock()
	c.ops = nil
	c.mu.Unlock()
}

func (c *Commands) push(op func(*ECS)) {
	c.mu.Lock()
	c.ops = append(c.ops, op)
	c.mu.Unlock()
}
