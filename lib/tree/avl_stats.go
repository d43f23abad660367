package tree

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/xavl/lib/infra"
)

type avlTreeStats struct {
	inserts   metric.Int64Counter
	removes   metric.Int64Counter
	rotations metric.Int64Counter
	size      metric.Int64ObservableUpDownCounter
}

func newAVLTreeStats[K infra.OrderedKey, V any](meter metric.Meter, tree *avlTree[K, V]) *avlTreeStats {
	return &avlTreeStats{
		inserts: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"avl.tree.inserts",
			metric.WithDescription(`The nodes created by insert.`),
		)),
		removes: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"avl.tree.removes",
			metric.WithDescription(`The nodes removed from the tree.`),
		)),
		rotations: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"avl.tree.rotations",
			metric.WithDescription(`The single rotations, a double rotation counts twice.`),
		)),
		size: lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
			"avl.tree.size",
			metric.WithDescription(`The nodes reachable from the root.`),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(tree.Len())
				return nil
			}),
		)),
	}
}

func (stats *avlTreeStats) inserted() {
	if stats == nil {
		return
	}
	stats.inserts.Add(context.Background(), 1)
}

func (stats *avlTreeStats) removed() {
	if stats == nil {
		return
	}
	stats.removes.Add(context.Background(), 1)
}

func (stats *avlTreeStats) rotated(dir AVLDirection) {
	if stats == nil {
		return
	}
	stats.rotations.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("dir", dir.String())),
	)
}
