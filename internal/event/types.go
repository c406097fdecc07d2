// internal/event/types.go
package event

const (
	TowerPlaced      EventType = "TowerPlaced"      // Data: *tower.Tower
	TowerRemoved     EventType = "TowerRemoved"     // Data: *tower.Tower
	TowersCombined   EventType = "TowersCombined"   // Data: tower.CombinedData
	SegmentCompleted EventType = "SegmentCompleted" // Data: segment index (int)
	SegmentAppended  EventType = "SegmentAppended"  // Data: segment index (int)
	EnemyKilled      EventType = "EnemyKilled"      // Data: enemy ID (int)
	EnemyReachedEnd  EventType = "EnemyReachedEnd"  // Data: enemy ID (int)
	WaveEnded        EventType = "WaveEnded"        // Data: wave number (int)
)
