package env

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func Get(key string) string {
	return os.Getenv(key)
}

func GetDefault(key string, defaultValue string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	return v
}

// GetIntDefault คืนค่า default ถ้าไม่ได้ตั้งค่า หรือแปลงเป็น int ไม่ได้
func GetIntDefault(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

// GetInt อ่านค่าแบบเข้มงวด ok = false เมื่อไม่ได้ตั้งค่า ถ้าตั้งค่าแต่ไม่ใช่ตัวเลขจะคืน error
func GetInt(key string) (int, bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return 0, false, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return i, true, nil
}

func GetInt64Default(key string, defaultValue int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultValue
	}
	return i
}

// รองรับรูปแบบของ time.ParseDuration เช่น 5s, 1m30s
func GetDurationDefault(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
