package ports

import "github.com/ccjb/compliance-backend/internal/domain/entities"

// NotificationPusher entrega notificações recém-criadas aos clientes
// conectados em tempo real. Entrega é melhor esforço: a notificação já
// está persistida quando o push acontece.
type NotificationPusher interface {
	Push(notification *entities.Notification)
}
