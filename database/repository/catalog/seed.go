package catalog

import "carebridge/models"

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:            "s1",
			Name:          "【单次】护士上门打针",
			Description:   "专业护士上门进行肌肉注射/皮下注射。",
			Price:         89,
			OriginalPrice: 120,
			Tags:          []string{"自营", "执业护士"},
			ImageURL:      "https://picsum.photos/seed/injection/300/200",
			Category:      "打针",
			IsHot:         true,
			Rating:        4.9,
			Duration:      "30min",
			Audience:      "术后康复、慢性病需定期注射人群",
			ContentList: []string{
				"核对处方及药品",
				"生命体征评估",
				"标准化注射操作",
				"按压止血及观察15分钟",
			},
			Contraindications: "意识不清、有过敏性休克史、无医生处方者",
			Notes:             "打针服务需用户自备药品及处方照，护士不携带任何处方药物上门。",
		},
		{
			ID:          "s2",
			Name:        "伤口换药护理",
			Description: "外科术后伤口清创、消毒及敷料更换。",
			Price:       150,
			Tags:        []string{"自营", "外科护理"},
			ImageURL:    "https://picsum.photos/seed/wound/300/200",
			Category:    "伤口换药",
			Rating:      4.8,
			Duration:    "40min",
		},
		{
			ID:          "s3",
			Name:        "PICC导管维护",
			Description: "导管冲封管、贴膜更换及穿刺点评估。",
			Price:       260,
			Tags:        []string{"专项认证"},
			ImageURL:    "https://picsum.photos/seed/picc/300/200",
			Category:    "导尿护理",
			Rating:      4.9,
			Duration:    "45min",
		},
		{
			ID:          "s4",
			Name:        "外科拆线服务",
			Description: "愈合评估及无菌拆线操作。",
			Price:       120,
			Tags:        []string{"自营"},
			ImageURL:    "https://picsum.photos/seed/stitch/300/200",
			Category:    "外科拆线",
			Rating:      4.7,
			Duration:    "30min",
		},
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "打针", Icon: "💉"},
		{ID: "2", Name: "静脉采血", Icon: "🩸"},
		{ID: "3", Name: "伤口换药", Icon: "🩹"},
		{ID: "4", Name: "导尿护理", Icon: "🩺"},
		{ID: "5", Name: "外科拆线", Icon: "✂️"},
		{ID: "6", Name: "压疮护理", Icon: "🧴"},
		{ID: "7", Name: "母婴护理", Icon: "🍼"},
		{ID: "8", Name: "居家康复", Icon: "🧘"},
	}
}

func seedCities() []models.City {
	return []models.City{
		{ID: "sh", Name: "上海市", IsOpen: true},
		{ID: "bj", Name: "北京市", IsOpen: true},
		{ID: "others", Name: "其他城市", IsOpen: false},
	}
}
