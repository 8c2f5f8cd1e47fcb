package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ใช้แทนกรณีไม่ต้องการ response ใด ๆ
type NoResponse struct{}

// Interface สำหรับ handler ที่รับ request และ return response
type RequestHandler[TRequest any, TResponse any] interface {
	Handle(ctx context.Context, request TRequest) (TResponse, error)
}

// HandlerFunc ใช้แปลงฟังก์ชันธรรมดาให้เป็น RequestHandler
type HandlerFunc[TRequest any, TResponse any] func(ctx context.Context, request TRequest) (TResponse, error)

func (f HandlerFunc[TRequest, TResponse]) Handle(ctx context.Context, request TRequest) (TResponse, error) {
	return f(ctx, request)
}

var (
	mu sync.RWMutex
	// registry สำหรับเก็บ handler ตาม type ของ request
	handlers = map[reflect.Type]func(ctx context.Context, req any) (any, error){}
)

// Register: ผูก handler กับ type ของ request ที่รองรับ (ลงทะเบียนซ้ำจะทับของเดิม)
func Register[TRequest any, TResponse any](handler RequestHandler[TRequest, TResponse]) {
	var req TRequest // สร้าง zero value เพื่อใช้หา type
	reqType := reflect.TypeOf(req)

	mu.Lock()
	defer mu.Unlock()

	// wrap handler ให้รองรับ any
	handlers[reqType] = func(ctx context.Context, request any) (any, error) {
		typedReq, ok := request.(TRequest)
		if !ok {
			return nil, errors.New("invalid request type")
		}
		return handler.Handle(ctx, typedReq)
	}
}

// Send: dispatch request ไปยัง handler ที่ match กับ type ของ request
func Send[TRequest any, TResponse any](ctx context.Context, req TRequest) (TResponse, error) {
	var empty TResponse

	reqType := reflect.TypeOf(req)
	mu.RLock()
	handler, ok := handlers[reqType]
	mu.RUnlock()
	if !ok {
		return empty, fmt.Errorf("no handler for request %T", req)
	}

	result, err := handler(ctx, req)
	if err != nil {
		return empty, err
	}

	// ตรวจสอบ type ของ response ก่อน return
	typedRes, ok := result.(TResponse)
	if !ok {
		return empty, errors.New("invalid response type")
	}

	return typedRes, nil
}
