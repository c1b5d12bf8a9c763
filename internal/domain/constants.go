package domain

// Стоимость действий в тиках (Time Units)
const (
	TimeCostMove        = 100
	TimeCostAttackLight = 80
	TimeCostWait        = 50
	TimeCostPickup      = 50
)

// Параметры восприятия
const (
	// VisionRadius - радиус поля зрения игрока по умолчанию.
	VisionRadius = 10
)

// Типы сообщений в логе
const (
	LogTypeInfo   = "INFO"
	LogTypeCombat = "COMBAT"
	LogTypeError  = "ERROR"
)
