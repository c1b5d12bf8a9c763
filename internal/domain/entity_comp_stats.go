package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла от этого удара.
func (f *FighterComponent) TakeDamage(amount int) bool {
	if f.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	f.HP -= amount

	if f.HP <= 0 {
		f.HP = 0
		f.IsDead = true
		return true
	}
	return false
}

// Heal лечит сущность, но не выше MaxHP
func (f *FighterComponent) Heal(amount int) {
	if f.IsDead {
		return // Не лечим трупы
	}
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}

// Alive - жив ли боец
func (f *FighterComponent) Alive() bool {
	return f != nil && !f.IsDead && f.HP > 0
}
