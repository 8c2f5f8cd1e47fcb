package transactor

import "context"

type transactorKey struct{}

type hooksKey struct{}

func txToContext(ctx context.Context, tx sqlxDB) context.Context {
	return context.WithValue(ctx, transactorKey{}, tx)
}

func txFromContext(ctx context.Context) sqlxDB {
	if tx, ok := ctx.Value(transactorKey{}).(sqlxDB); ok {
		return tx
	}
	return nil
}

// hooks ของ transaction ชั้นนอกสุด ส่งต่อให้ transaction ที่ซ้อนอยู่ข้างใน
type postCommitHooks struct {
	hooks []PostCommitHook
}

func hooksToContext(ctx context.Context, h *postCommitHooks) context.Context {
	return context.WithValue(ctx, hooksKey{}, h)
}

func hooksFromContext(ctx context.Context) *postCommitHooks {
	if h, ok := ctx.Value(hooksKey{}).(*postCommitHooks); ok {
		return h
	}
	return nil
}
