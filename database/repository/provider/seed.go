package provider

import "carebridge/models"

func seedNurses() []models.Nurse {
	return []models.Nurse{
		{
			ID:         "n1",
			Name:       "张雅护师",
			Avatar:     "https://picsum.photos/seed/n1/100/100",
			Hospital:   "上海交通大学附属仁济医院",
			Department: "急诊科",
			Tags:       []string{"5年经验", "操作娴熟", "态度极好"},
			Rating:     4.9,
			OrderCount: 1240,
			Distance:   "1.2km",
			Intro:      "拥有多年急救室护理经验，擅长各类静脉穿刺及导尿护理。",
			Role:       models.RoleNurse,
			CertStatus: models.CertVerified,
		},
		{
			ID:         "n2",
			Name:       "李明主管护师",
			Avatar:     "https://picsum.photos/seed/n2/100/100",
			Hospital:   "上海华山医院",
			Department: "普外科",
			Tags:       []string{"10年工龄", "专家级", "持证上岗"},
			Rating:     5.0,
			OrderCount: 890,
			Distance:   "2.5km",
			Role:       models.RoleNurse,
			CertStatus: models.CertVerified,
		},
	}
}
