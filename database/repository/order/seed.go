package order

import (
	"time"

	"carebridge/models"
)

func seedOrders() []models.Order {
	return []models.Order{
		{
			ID:           "ORD20240520",
			ServiceName:  "【单次】护士上门打针",
			Status:       models.OrderCompleted,
			Price:        89,
			PaidAmount:   89,
			Date:         "2024-05-20 10:00",
			ImageURL:     "https://picsum.photos/seed/injection/300/200",
			Address:      "上海市浦东新区张江路1号",
			RoomNumber:   "102室",
			CustomerName: "王大爷",
			NurseID:      "n1",
			CreateTime:   time.Date(2024, 5, 19, 18, 0, 0, 0, time.Local),
			NursingRecord: &models.NursingRecord{
				ID:          "rec1",
				OrderID:     "ORD20240520",
				Date:        "2024-05-20",
				ServiceName: "【单次】护士上门打针",
				NurseName:   "张雅",
				Vitals:      models.Vitals{BP: "120/80", Temp: "36.5", Pulse: "72"},
				Content:     "注射过程顺利，局部无红肿，观察15分钟无不良反应，建议多饮水休息。",
				Photos: []string{
					"https://picsum.photos/seed/med1/200/200",
					"https://picsum.photos/seed/med2/200/200",
				},
			},
		},
		{
			ID:           "ORD20240524",
			ServiceName:  "伤口换药护理",
			Status:       models.OrderOngoing,
			Price:        150,
			PaidAmount:   150,
			Date:         "今日 15:30",
			ImageURL:     "https://picsum.photos/seed/wound/300/200",
			Address:      "上海市徐汇区斜土路88号",
			RoomNumber:   "502室",
			CustomerName: "李先生",
			NurseID:      "n2",
			CreateTime:   time.Date(2024, 5, 24, 9, 0, 0, 0, time.Local),
		},
		{
			ID:           "ORD20240525",
			ServiceName:  "PICC导管维护",
			Status:       models.OrderWaitingService,
			Price:        260,
			PaidAmount:   260,
			Date:         "明日 10:00",
			ImageURL:     "https://picsum.photos/seed/picc/300/200",
			Address:      "上海市黄浦区淮海中路1号",
			RoomNumber:   "1203室",
			CustomerName: "赵奶奶",
			NurseID:      "n1",
			CreateTime:   time.Date(2024, 5, 24, 14, 0, 0, 0, time.Local),
		},
		{
			ID:           "ORD20240526",
			ServiceName:  "外科拆线服务",
			Status:       models.OrderWaitingAcceptance,
			Price:        120,
			PaidAmount:   120,
			Date:         "2024-05-26 14:00",
			ImageURL:     "https://picsum.photos/seed/stitch/300/200",
			Address:      "上海市静安区南京西路100号",
			RoomNumber:   "201室",
			CustomerName: "陈女士",
			CreateTime:   time.Date(2024, 5, 24, 16, 0, 0, 0, time.Local),
		},
		{
			ID:           "ORD20240521",
			ServiceName:  "【单次】护士上门打针",
			Status:       models.OrderCancelled,
			Price:        89,
			PaidAmount:   0,
			Date:         "2024-05-21 09:00",
			ImageURL:     "https://picsum.photos/seed/inj2/300/200",
			Address:      "上海市闵行区虹梅路10号",
			CustomerName: "刘先生",
			CancelReason: "用户主动取消",
			CreateTime:   time.Date(2024, 5, 20, 20, 0, 0, 0, time.Local),
		},
	}
}
