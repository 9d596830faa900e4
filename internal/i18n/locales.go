package i18n

// Static language tables. Only the keys the core actually renders are kept.
// The Turkish table is missing a few keys (ranks, rankChanged); those fall
// back to the key string.

var messages = map[Locale]map[string]any{
	LocaleEN: en,
	LocaleTR: tr,
}

var en = map[string]any{
	"chemicals": map[string]any{
		"tearGas":     "Tear Gas",
		"toxin":       "Toxin",
		"smokeScreen": "Smoke Screen",
		"radiation":   "Radiation",
		"noActive":    "No active chemical threats detected.",
		"warning":     "WARNING: Chemical threats detected in the area!",
	},
	"notifications": map[string]any{
		"success":          "Success",
		"error":            "Error",
		"warning":          "Warning",
		"info":             "Info",
		"chemicalDetected": "Chemical threat detected!",
		"zombieHorde":      "Warning! Zombie horde approaching!",
		"campApproved":     "New safe camp approved!",
		"levelUp":          "Level Up!",
		"rankChanged":      "New rank: {rank}",
	},
	"events": map[string]any{
		"zombieHorde": map[string]any{
			"title":       "Zombie Horde Alert",
			"description": "A large zombie horde was spotted nearby! They're approaching quickly.",
			"options": map[string]any{
				"mark":     "Mark the horde (Safe)",
				"approach": "Approach the horde (Risky)",
			},
		},
		"survivorFound": map[string]any{
			"title":       "Survivor Found",
			"description": "A survivor was spotted nearby. They might need help.",
			"options": map[string]any{
				"help":   "Help them (Safe)",
				"rescue": "Send rescue team (Risky)",
			},
		},
		"contaminatedArea": map[string]any{
			"title":       "Contaminated Area",
			"description": "High levels of radiation detected in the area.",
		},
		"suppliesDrop": map[string]any{
			"title":       "Supplies Drop",
			"description": "An emergency supply package has been dropped nearby.",
		},
		"radioMessage": map[string]any{
			"title":       "Radio Message",
			"description": "A message has been detected on the emergency frequency.",
		},
		"options": map[string]any{
			"investigate": "Investigate",
			"avoid":       "Avoid",
			"help":        "Help",
			"collect":     "Collect",
			"listen":      "Listen",
		},
	},
	"ranks": map[string]any{
		"novice":   "Novice",
		"survivor": "Survivor",
		"ranger":   "Ranger",
		"defender": "Defender",
		"elite":    "Elite",
	},
}

var tr = map[string]any{
	"chemicals": map[string]any{
		"tearGas":     "Biber Gazı",
		"toxin":       "Toksin",
		"smokeScreen": "Duman Perdesi",
		"radiation":   "Radyasyon",
		"noActive":    "Aktif kimyasal tehdit bulunamadı.",
		"warning":     "DİKKAT: Kimyasal tehditler bölgede tespit edildi!",
	},
	"notifications": map[string]any{
		"success":          "Başarılı",
		"error":            "Hata",
		"warning":          "Uyarı",
		"info":             "Bilgi",
		"chemicalDetected": "Kimyasal tehdit tespit edildi!",
		"zombieHorde":      "Dikkat! Zombi sürüsü yaklaşıyor!",
		"campApproved":     "Yeni güvenli kamp onaylandı!",
		"levelUp":          "Seviye atladın!",
	},
	"events": map[string]any{
		"zombieHorde": map[string]any{
			"title":       "Zombi Sürüsü Alarmı",
			"description": "Yakınlarda büyük bir zombi sürüsü görüldü! Hızla yaklaşıyorlar.",
			"options": map[string]any{
				"mark":     "Sürüyü işaretle (Güvenli)",
				"approach": "Sürüye yaklaş (Riskli)",
			},
		},
		"survivorFound": map[string]any{
			"title":       "Hayatta Kalan Bulundu",
			"description": "Yakınlarda bir hayatta kalan görüldü. Yardıma ihtiyacı olabilir.",
			"options": map[string]any{
				"help":   "Yardım et (Güvenli)",
				"rescue": "Kurtarma ekibi gönder (Riskli)",
			},
		},
		"contaminatedArea": map[string]any{
			"title":       "Kontamine Bölge",
			"description": "Bölgede yüksek seviyede radyasyon tespit edildi.",
		},
		"suppliesDrop": map[string]any{
			"title":       "Malzeme Yardımı",
			"description": "Yakınlara acil yardım paketi bırakıldı.",
		},
		"radioMessage": map[string]any{
			"title":       "Telsiz Mesajı",
			"description": "Acil durum frekansında bir mesaj tespit edildi.",
		},
		"options": map[string]any{
			"investigate": "Araştır",
			"avoid":       "Uzak dur",
			"help":        "Yardım et",
			"collect":     "Topla",
			"listen":      "Dinle",
		},
	},
}
