package domain

// Wait добавляет задержку к следующему действию
func (a *AIComponent) Wait(ticks int) {
	a.NextActionTick += ticks
}

// IsReady проверяет, настал ли ход (относительно глобального времени)
func (a *AIComponent) IsReady(globalTick int) bool {
	return a.NextActionTick <= globalTick
}

// SpendTime списывает стоимость действия, если у сущности есть AI.
func SpendTime(a *Actor, cost int) {
	if a != nil && a.AI != nil {
		a.AI.Wait(cost)
	}
}
