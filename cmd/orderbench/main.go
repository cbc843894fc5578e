package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/go-mall/config"
	"github.com/d60-Lab/go-mall/internal/model"
	"github.com/d60-Lab/go-mall/internal/repository"
	"github.com/d60-Lab/go-mall/internal/service"
	"github.com/d60-Lab/go-mall/pkg/database"
	"github.com/d60-Lab/go-mall/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 下单与查询链路压测：N 单、CONC 并发，输出 p50/p95/p99
func main() {
	cfg := must(config.Load())
	_ = logger.Init("warn")
	db := must(database.InitDB(cfg))
	if err := database.Migrate(db); err != nil {
		panic(err)
	}

	N := 10000
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 { N = n }
	}
	CONC := 1
	if s := os.Getenv("CONC"); s != "" {
		if c, err := strconv.Atoi(s); err == nil && c > 0 { CONC = c }
	}
	PAGE := 50
	if s := os.Getenv("PAGE"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 { PAGE = p }
	}

	addressRepo := repository.NewAddressRepository(db)
	shopRepo := repository.NewShopRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	addressSvc := service.NewAddressService(addressRepo)
	shopSvc := service.NewShopService(shopRepo)
	productSvc := service.NewProductService(productRepo, shopSvc, nil, 0)
	itemSvc := service.NewOrderItemService(itemRepo, productSvc, addressSvc, shopSvc)
	orderSvc := service.NewOrderService(db, orderRepo, itemSvc)

	ctx := context.Background()

	// seed: 一个卖家 + 店铺 + 商品，N 个买家各一个地址
	seller := model.User{ID: uuid.New().String(), Name: "seller", Email: "seller@example.com", Password: "p", Role: model.RoleProductor, IsActive: true}
	_ = db.Create(&seller).Error
	shop := model.Shop{ID: uuid.New().String(), OwnerID: seller.ID, Name: "bench-shop"}
	_ = db.Create(&shop).Error
	product := model.Product{ID: uuid.New().String(), ShopID: shop.ID, Name: "bench-item", Price: 9.90, Stock: 1 << 30}
	_ = db.Create(&product).Error

	buyers := make([]model.User, N)
	addrs := make([]model.Address, N)
	batch := 1000
	for i := 0; i < N; i++ {
		id := uuid.New().String()
		buyers[i] = model.User{ID: id, Name: "u" + id[:8], Email: id[:8] + "@example.com", Password: "p", Role: model.RoleUser, IsActive: true}
		addrs[i] = model.Address{ID: uuid.New().String(), UserID: id, Street: "st", City: "c", State: "s", PostalCode: "00000"}
		if (i+1)%batch == 0 {
			sub := buyers[i+1-batch : i+1]
			_ = db.Create(&sub).Error
			asub := addrs[i+1-batch : i+1]
			_ = db.Create(&asub).Error
		}
	}
	if N%batch != 0 {
		sub := buyers[N-N%batch:]
		_ = db.Create(&sub).Error
		asub := addrs[N-N%batch:]
		_ = db.Create(&asub).Error
	}

	// dispatch N 次下单，CONC 个 worker
	recs := make([]time.Duration, 0, N)
	recCh := make(chan time.Duration, N)
	feed := make(chan int, N)
	for i := 0; i < N; i++ { feed <- i }
	close(feed)
	workers := CONC
	if workers > N { workers = N }
	doneCh := make(chan struct{}, workers)
	t0 := time.Now()
	for w := 0; w < workers; w++ {
		go func() {
			for i := range feed {
				st := time.Now()
				_, _ = orderSvc.CreateOrder(ctx, &buyers[i], addrs[i].ID, []service.CreateOrderItemInput{
					{ProductID: product.ID, Quantity: 1 + i%3},
				})
				recCh <- time.Since(st)
			}
			doneCh <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ { <-doneCh }
	close(recCh)
	for d := range recCh { recs = append(recs, d) }
	createDur := time.Since(t0)

	// 买家侧翻页
	q0 := time.Now()
	_, _, _ = orderSvc.ListOrders(ctx, &buyers[0], 1, PAGE)
	listDur := time.Since(q0)

	// 卖家侧已售查询（先把一部分订单置为 COMPLETED）
	for i := 0; i < N/10+1; i++ {
		_, _ = orderSvc.UpdateOrderStatus(ctx, mustOrderID(ctx, orderSvc, &buyers[i]), "completed", &buyers[i])
	}
	q1 := time.Now()
	sold, _ := itemSvc.GetSoldItems(ctx, &seller)
	soldDur := time.Since(q1)

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 { return 0 }
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 { k = 0 }
		if k >= len(xs) { k = len(xs) - 1 }
		return xs[k]
	}

	fmt.Printf("N=%d, CONC=%d, PAGE=%d\n", N, CONC, PAGE)
	fmt.Printf("CreateOrder total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		createDur, createDur/time.Duration(N), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99))
	fmt.Printf("ListOrders(%d) latency: %v\n", PAGE, listDur)
	fmt.Printf("GetSoldItems latency: %v (%d items)\n", soldDur, len(sold))
}

func mustOrderID(ctx context.Context, svc service.OrderService, buyer *model.User) string {
	orders, _, err := svc.ListOrders(ctx, buyer, 1, 1)
	if err != nil || len(orders) == 0 {
		return ""
	}
	return orders[0].ID
}
