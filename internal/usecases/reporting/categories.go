package reporting

import (
	hmsdomain "github.com/vfg2006/hotel-manager-api/infrastructure/integrator/hms/domain"
	"github.com/vfg2006/hotel-manager-api/internal/domain"
)

// statusLabelIndex monta o mapa código->rótulo a partir da lista de
// referência do backend, caindo nos rótulos embutidos quando a lista falhou
func statusLabelIndex(statuses []hmsdomain.RoomStatus) (map[string]string, []string) {
	if len(statuses) == 0 {
		return domain.RoomStatusLabels, domain.DefaultRoomStatusLabels
	}

	index := make(map[string]string, len(statuses))
	labels := make([]string, 0, len(statuses))

	for _, status := range statuses {
		index[status.Code] = status.Name
		labels = append(labels, status.Name)
	}

	return index, labels
}

// typeLabels extrai a lista de rótulos de tipos, caindo nos rótulos
// embutidos quando a lista falhou
func typeLabels(types []hmsdomain.RoomType) []string {
	if len(types) == 0 {
		return domain.DefaultRoomTypeLabels
	}

	labels := make([]string, 0, len(types))
	for _, roomType := range types {
		labels = append(labels, roomType.Name)
	}

	return labels
}

// bucketize conta os rótulos resolvidos sobre a lista de referência.
// Rótulos fora da referência são somados no balde "Không xác định",
// presente apenas quando há ao menos um registro não reconhecido.
// A soma das contagens é sempre len(resolved).
func bucketize(reference []string, resolved []string) []domain.CategoryBucket {
	counts := make(map[string]int, len(reference))
	for _, label := range resolved {
		counts[label]++
	}

	total := len(resolved)
	buckets := make([]domain.CategoryBucket, 0, len(reference)+1)

	for _, label := range reference {
		buckets = append(buckets, domain.CategoryBucket{
			Label:      label,
			Count:      counts[label],
			Percentage: domain.Percentage(counts[label], total),
		})
		delete(counts, label)
	}

	unrecognized := 0
	for _, count := range counts {
		unrecognized += count
	}

	if unrecognized > 0 {
		buckets = append(buckets, domain.CategoryBucket{
			Label:      domain.UnrecognizedLabel,
			Count:      unrecognized,
			Percentage: domain.Percentage(unrecognized, total),
		})
	}

	return buckets
}

// roomStatusBuckets resolve o rótulo de status de cada quarto e bucketiza
func roomStatusBuckets(rooms []hmsdomain.Room, statuses []hmsdomain.RoomStatus) []domain.CategoryBucket {
	index, reference := statusLabelIndex(statuses)

	resolved := make([]string, 0, len(rooms))
	for _, room := range rooms {
		label, ok := index[room.Status]
		if !ok {
			label = domain.UnrecognizedLabel
		}
		resolved = append(resolved, label)
	}

	return bucketize(reference, resolved)
}

// roomTypeBuckets bucketiza os quartos pelo nome do tipo aninhado
func roomTypeBuckets(rooms []hmsdomain.Room, types []hmsdomain.RoomType) []domain.CategoryBucket {
	reference := typeLabels(types)

	resolved := make([]string, 0, len(rooms))
	for _, room := range rooms {
		label := room.Type.Name
		if label == "" {
			label = domain.UnrecognizedLabel
		}
		resolved = append(resolved, label)
	}

	return bucketize(reference, resolved)
}
