// partition.go
package status

// Partition separa una lista en activas (estado no final) y completadas
// (entregadas o canceladas), preservando el orden relativo de entrada.
// El llamador ordena antes si lo necesita (típicamente por fecha desc).
func Partition[T any](items []T, statusOf func(T) string) (active, completed []T) {
	for _, it := range items {
		if IsFinal(statusOf(it)) {
			completed = append(completed, it)
		} else {
			active = append(active, it)
		}
	}
	return active, completed
}
