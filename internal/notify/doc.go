// Package notify delivers accepted orders to the people who act on them.
//
// Two paths exist:
//   - Hub pushes the full order list to connected admin screens over
//     WebSocket. Delivery is at-most-once with no replay.
//   - Dispatcher hands each order to the configured StaffNotifier
//     implementations (e-mail, webhook, kitchen queue) in the background.
//
// Fanout ties both together behind the service.OrderNotifier interface.
// Failures on either path are logged and counted; they never reach the
// customer's request.
package notify
