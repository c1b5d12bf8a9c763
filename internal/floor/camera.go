package floor

import "github.com/otricadziziusz/roguelike-tutorial/internal/domain"

// Camera - центр экрана в мировых координатах.
// Состояния, кроме центра, нет: двигает камеру тот, кто следит за игроком.
type Camera struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Follow переносит центр камеры на позицию.
func (c *Camera) Follow(p domain.Position) {
	c.X, c.Y = p.X, p.Y
}

// LeftTop возвращает мировую координату, которая попадает в левую верхнюю
// клетку экрана.
func (c Camera) LeftTop(screen domain.Size) (left, top int) {
	return c.X - floorDiv(screen.Width, 2), c.Y - floorDiv(screen.Height, 2)
}

// Overlap пересекает окно камеры с границами мира.
// Оба прямоугольника всегда одного размера. Если пересечения нет,
// размеры равны нулю (это не ошибка, рисовать просто нечего).
func (c Camera) Overlap(world, screen domain.Size) (screenRect, worldRect domain.Rect) {
	camLeft, camTop := c.LeftTop(screen)

	screenLeft := max(0, -camLeft)
	screenTop := max(0, -camTop)
	worldLeft := max(0, camLeft)
	worldTop := max(0, camTop)

	w := min(screen.Width-screenLeft, world.Width-worldLeft)
	h := min(screen.Height-screenTop, world.Height-worldTop)
	if w <= 0 || h <= 0 {
		w, h = 0, 0
	}

	screenRect = domain.Rect{X: screenLeft, Y: screenTop, W: w, H: h}
	worldRect = domain.Rect{X: worldLeft, Y: worldTop, W: w, H: h}
	return screenRect, worldRect
}

// WorldToScreen переводит мировую позицию в клетку экрана.
// ok == false, если позиция не попадает на экран.
func (c Camera) WorldToScreen(p domain.Position, screen domain.Size) (x, y int, ok bool) {
	left, top := c.LeftTop(screen)
	x, y = p.X-left, p.Y-top
	ok = x >= 0 && y >= 0 && x < screen.Width && y < screen.Height
	return x, y, ok
}

// ScreenToWorld - обратное преобразование. Границы мира не проверяются.
func (c Camera) ScreenToWorld(x, y int, screen domain.Size) domain.Position {
	left, top := c.LeftTop(screen)
	return domain.Position{X: x + left, Y: y + top}
}

// Contains - попадает ли мировая позиция в окно камеры.
func (c Camera) Contains(p domain.Position, screen domain.Size) bool {
	_, _, ok := c.WorldToScreen(p, screen)
	return ok
}

// floorDiv - деление с округлением вниз (для отрицательных тоже).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
