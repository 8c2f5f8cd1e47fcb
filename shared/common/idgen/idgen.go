package idgen

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init กำหนด node id ของ process นี้ (0-1023) ต้องไม่ซ้ำกันถ้ารันหลาย instance
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// GenerateID สร้าง id แบบเรียงตามเวลา ใช้เป็น primary key ของ customer และ transaction
func GenerateID() int64 {
	mu.Lock()
	defer mu.Unlock()
	if node == nil {
		// ยังไม่ได้ Init (เช่นใน test) ใช้ node 1
		node, _ = snowflake.NewNode(1)
	}
	return node.Generate().Int64()
}
