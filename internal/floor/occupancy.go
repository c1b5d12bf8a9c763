package floor

import "github.com/otricadziziusz/roguelike-tutorial/internal/domain"

// occupancy - индекс "клетка -> актеры".
// Через API этажа в клетке не бывает больше одного актера,
// список нужен только чтобы пережить нарушение инварианта без паники.
type occupancy map[domain.Position][]*domain.Actor

func (o occupancy) add(a *domain.Actor, p domain.Position) {
	o[p] = append(o[p], a)
}

func (o occupancy) remove(a *domain.Actor, p domain.Position) {
	list := o[p]
	for i, other := range list {
		if other == a {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(o, p)
		return
	}
	o[p] = list
}

func (o occupancy) at(p domain.Position) []*domain.Actor {
	return o[p]
}
