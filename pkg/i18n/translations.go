package i18n

var translations = map[string]map[string]string{
	"en": {
		"welcome":         "Welcome to the Intelligent Troubleshooting Assistant!",
		"welcome_help":    "I can help you diagnose problems with your computer or mobile device.",
		"lets_start":      "Let's get started.",
		"select_device":   "Which device are you having trouble with?",
		"computer_option": "Computer (desktop or laptop)",
		"mobile_option":   "Mobile (phone or tablet)",
		"device_unclear":  "Sorry, I didn't catch that. Please answer 'computer' or 'mobile'.",
		"describe_problem": "Please describe the problem in your own words.",
		"problem_detected": "This sounds like a %s problem (%.0f%% confident).",
		"ask_questions":    "I'll ask a few quick questions to narrow it down.",
		"skip_hint":        "(Press enter to skip a question.)",
		"invalid_option":   "Please answer with one of: %s",
		"diagnosis_title":  "Diagnosis",
		"probable_cause":   "Probable cause",
		"confidence":       "Confidence",
		"solutions":        "Recommended steps",
		"explanation":      "Why",
		"alternatives":     "Other possibilities",
		"general_advice":   "I couldn't pinpoint a specific cause, but here is general advice for this kind of problem.",
		"session_done":     "I hope that helps! Type 'restart' to diagnose another problem.",
		"restart_hint":     "Type 'restart' to begin a new diagnosis.",
	},
	"ar": {
		"welcome":         "مرحبًا بك في مساعد استكشاف الأخطاء الذكي!",
		"welcome_help":    "يمكنني مساعدتك في تشخيص مشاكل جهاز الكمبيوتر أو الهاتف المحمول.",
		"lets_start":      "هيا نبدأ.",
		"select_device":   "ما الجهاز الذي تواجه مشكلة معه؟",
		"computer_option": "كمبيوتر (مكتبي أو محمول)",
		"mobile_option":   "هاتف محمول (جوال أو جهاز لوحي)",
		"device_unclear":  "عذرًا، لم أفهم. يرجى الإجابة بـ \"كمبيوتر\" أو \"جوال\".",
		"describe_problem": "يرجى وصف المشكلة بكلماتك الخاصة.",
		"problem_detected": "يبدو أنها مشكلة %s (بثقة %.0f%%).",
		"ask_questions":    "سأطرح بضعة أسئلة سريعة لتحديد المشكلة.",
		"skip_hint":        "(اضغط إدخال لتخطي أي سؤال.)",
		"invalid_option":   "يرجى الإجابة بإحدى الخيارات: %s",
		"diagnosis_title":  "التشخيص",
		"probable_cause":   "السبب المحتمل",
		"confidence":       "درجة الثقة",
		"solutions":        "الخطوات الموصى بها",
		"explanation":      "السبب",
		"alternatives":     "احتمالات أخرى",
		"general_advice":   "لم أتمكن من تحديد سبب دقيق، لكن إليك نصائح عامة لهذا النوع من المشاكل.",
		"session_done":     "أتمنى أن يكون ذلك مفيدًا! اكتب \"restart\" لتشخيص مشكلة أخرى.",
		"restart_hint":     "اكتب \"restart\" لبدء تشخيص جديد.",
	},
}

var categoryNames = map[string]map[string]string{
	"en": {
		"overheating":      "overheating",
		"slow_performance": "slow performance",
		"battery_issues":   "battery",
		"network_issues":   "network",
		"startup_failure":  "startup failure",
		"screen_problems":  "screen",
		"storage_issues":   "storage",
		"audio_problems":   "audio",
		"app_crashes":      "app crashes",
		"hardware_failure": "hardware failure",
	},
	"ar": {
		"overheating":      "ارتفاع الحرارة",
		"slow_performance": "بطء الأداء",
		"battery_issues":   "البطارية",
		"network_issues":   "الشبكة",
		"startup_failure":  "فشل التشغيل",
		"screen_problems":  "الشاشة",
		"storage_issues":   "التخزين",
		"audio_problems":   "الصوت",
		"app_crashes":      "توقف التطبيقات",
		"hardware_failure": "عطل في المكونات",
	},
}

var optionTranslations = map[string]map[string]string{
	"ar": {
		"yes":        "نعم",
		"no":         "لا",
		"sometimes":  "أحيانًا",
		"unsure":     "غير متأكد",
		"high":       "مرتفع",
		"normal":     "طبيعي",
		"low":        "منخفض",
		"medium":     "متوسط",
		"many":       "كثير",
		"few":        "قليل",
		"fast":       "سريع",
		"slow":       "بطيء",
		"on":         "مضاء",
		"off":        "مطفأ",
		"blinking":   "يومض",
		"mechanical": "ميكانيكي",
		"ssd":        "SSD",
		"no_sd":      "لا توجد بطاقة",
	},
}
