package user

import "carebridge/models"

func seedPatients() []models.Patient {
	return []models.Patient{
		{ID: "p1", Name: "王大爷", Age: 72, Gender: "男", Allergies: "青霉素过敏", MedicalHistory: "高血压、糖尿病史", Symptoms: "术后康复中"},
		{ID: "p2", Name: "李先生", Age: 45, Gender: "男", Allergies: "无", MedicalHistory: "骨折术后", Symptoms: "换药"},
	}
}

func seedAddresses() []models.Address {
	return []models.Address{
		{ID: "a1", Address: "上海市浦东新区张江路1号", RoomNumber: "102室", Name: "王先生", Phone: "138****9999", IsDefault: true},
	}
}

func seedCoupons() []models.Coupon {
	return []models.Coupon{
		{ID: "c1", Name: "新用户立减券", Amount: 20, MinSpend: 100, ExpiryDate: "2024-12-31", Status: "unused"},
		{ID: "c2", Name: "全场通用红包", Amount: 10, MinSpend: 50, ExpiryDate: "2024-06-30", Status: "unused"},
	}
}

func seedHealthRecords() []models.NursingRecord {
	return []models.NursingRecord{
		{
			ID:          "rec3",
			Date:        "2024-05-24",
			ServiceName: "上门导尿护理",
			NurseName:   "张雅",
			Vitals:      models.Vitals{BP: "130/85", Temp: "36.6", Pulse: "78"},
			Content:     "患者情绪稳定，导尿管留置顺畅，观察无感染迹象。",
			Photos:      []string{"https://picsum.photos/seed/h3/200/200"},
		},
	}
}

func seedReports() []models.MedicalReport {
	return []models.MedicalReport{
		{ID: "rep1", Title: "2024年入职体检报告", Date: "2024-03-12", Type: "PDF", URL: "#", Size: "2.4MB"},
		{ID: "rep2", Title: "腹部B超影像检查", Date: "2024-04-05", Type: "JPG", URL: "#", Size: "1.8MB"},
	}
}
