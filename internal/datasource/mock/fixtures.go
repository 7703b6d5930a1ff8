package mock

import (
	"time"

	"moneymong/internal/domain/models"
)

// Development fixture set: six Korean finance reports, three with summaries,
// plus seeded conversations. Shapes mirror the live backend exactly so the
// view layer cannot tell the modes apart.

const fixtureUserID = "user-1"

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("bad fixture timestamp: " + s)
	}
	return t
}

func fixtureDocuments() []models.Document {
	return []models.Document{
		{
			ID:               "doc-1",
			Title:            "2024 글로벌 경제 전망 보고서",
			Author:           "한국은행 경제연구원",
			PublishedDate:    "2024-01-15",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/2024-global-economy.pdf",
			FilePath:         "s3://moneymong-reports/2024/global-economy.pdf",
			Language:         "ko",
			Metadata:         map[string]interface{}{"category": "거시경제", "institution": "한국은행"},
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       145,
			FileSize:         5242880,
			CreatedAt:        ts("2024-01-15T09:00:00Z"),
			UpdatedAt:        ts("2024-01-15T09:30:00Z"),
		},
		{
			ID:               "doc-2",
			Title:            "AI 산업 투자 동향 분석 2024",
			Author:           "금융연구원",
			PublishedDate:    "2024-02-20",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/ai-investment-2024.pdf",
			FilePath:         "s3://moneymong-reports/2024/ai-investment.pdf",
			Language:         "ko",
			Metadata:         map[string]interface{}{"category": "산업분석", "keywords": "생성형AI"},
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       98,
			FileSize:         3145728,
			CreatedAt:        ts("2024-02-20T10:30:00Z"),
			UpdatedAt:        ts("2024-02-20T11:00:00Z"),
		},
		{
			ID:               "doc-3",
			Title:            "반도체 시장 분석 리포트",
			Author:           "KDB산업은행",
			PublishedDate:    "2024-03-10",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/semiconductor-market.pdf",
			Language:         "ko",
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       72,
			FileSize:         2097152,
			CreatedAt:        ts("2024-03-10T14:00:00Z"),
			UpdatedAt:        ts("2024-03-10T14:30:00Z"),
		},
		{
			ID:               "doc-4",
			Title:            "부동산 시장 전망 Q1 2024",
			Author:           "국토연구원",
			PublishedDate:    "2024-03-25",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/real-estate-q1.pdf",
			Language:         "ko",
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       54,
			FileSize:         1572864,
			CreatedAt:        ts("2024-03-25T11:00:00Z"),
			UpdatedAt:        ts("2024-03-25T11:20:00Z"),
		},
		{
			ID:               "doc-5",
			Title:            "탄소중립 정책 동향",
			Author:           "환경부",
			PublishedDate:    "2024-04-05",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/carbon-neutral.pdf",
			Language:         "ko",
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       36,
			FileSize:         1048576,
			CreatedAt:        ts("2024-04-05T09:30:00Z"),
			UpdatedAt:        ts("2024-04-05T09:45:00Z"),
		},
		{
			ID:               "doc-6",
			Title:            "K-뷰티 해외 진출 전략",
			Author:           "무역협회",
			PublishedDate:    "2024-04-12",
			SourceType:       models.SourcePDF,
			SourceURL:        "https://example.com/reports/k-beauty-global.pdf",
			Language:         "ko",
			ProcessingStatus: models.StatusCompleted,
			TotalPages:       42,
			FileSize:         1310720,
			CreatedAt:        ts("2024-04-12T15:00:00Z"),
			UpdatedAt:        ts("2024-04-12T15:15:00Z"),
		},
	}
}

func fixtureSummaries() map[string]*models.DocumentSummary {
	return map[string]*models.DocumentSummary{
		"doc-1": {
			ID:           "summary-1",
			DocumentID:   "doc-1",
			SummaryShort: "2024년 글로벌 경제는 불확실성 속에서도 점진적 회복세를 보일 것으로 전망되며, 아시아 지역의 성장세가 두드러질 것으로 예상됩니다.",
			SummaryLong: "<main_topic>2024년 글로벌 경제는 높은 불확실성 속에서도 점진적 회복세를 나타낼 전망</main_topic>" +
				"<key_points>" +
				"<key_point>글로벌 GDP 성장률 3.2% 예상</key_point>" +
				"<key_point>인플레이션 점진적 완화 전망</key_point>" +
				"<key_point>아시아 경제 성장 지속</key_point>" +
				"<key_point>디지털·친환경 산업 부상</key_point>" +
				"</key_points>" +
				"<key_terms><key_term>GDP</key_term><key_term>통화정책</key_term><key_term>공급망</key_term></key_terms>",
			KeyPoints: []string{
				"글로벌 GDP 성장률 3.2% 예상",
				"인플레이션 점진적 완화 전망",
				"아시아 경제 성장 지속",
				"디지털·친환경 산업 부상",
				"지정학적 리스크 지속 주의 필요",
			},
			Entities: map[string]interface{}{
				"countries": []interface{}{"미국", "중국", "인도", "한국"},
				"keywords":  []interface{}{"인플레이션", "GDP", "통화정책", "공급망"},
			},
			ModelVersion: "gpt-4-turbo",
			CreatedAt:    ts("2024-01-15T09:30:00Z"),
			UpdatedAt:    ts("2024-01-15T09:30:00Z"),
		},
		"doc-2": {
			ID:           "summary-2",
			DocumentID:   "doc-2",
			SummaryShort: "AI 산업에 대한 글로벌 투자가 급증하며, 생성형 AI를 중심으로 다양한 산업 분야에서 혁신이 가속화되고 있습니다.",
			SummaryLong: "<main_topic>인공지능 산업은 2024년에도 폭발적 성장을 지속할 전망</main_topic>" +
				"<key_points>" +
				"<key_point>글로벌 AI 투자 전년 대비 40% 증가</key_point>" +
				"<key_point>생성형 AI 시장 급성장</key_point>" +
				"<key_point>AI 반도체 수요 폭증</key_point>" +
				"</key_points>",
			KeyPoints: []string{
				"글로벌 AI 투자 전년 대비 40% 증가",
				"생성형 AI 시장 급성장",
				"AI 반도체 수요 폭증",
				"한국 AI 인프라 투자 확대 필요",
			},
			Entities: map[string]interface{}{
				"main_company": "NVIDIA",
				"keywords":     "생성형 AI",
			},
			ModelVersion: "gpt-4-turbo",
			CreatedAt:    ts("2024-02-20T11:00:00Z"),
			UpdatedAt:    ts("2024-02-20T11:00:00Z"),
		},
		// doc-3 has a plain-text summary with no embedded tags, exercising the
		// mandatory fallback path in the summary panel.
		"doc-3": {
			ID:           "summary-3",
			DocumentID:   "doc-3",
			SummaryShort: "반도체 시장은 AI 수요 증가와 메모리 반도체 회복으로 2024년 강한 성장세를 보일 것으로 전망됩니다.",
			SummaryLong: "2024년 글로벌 반도체 시장은 전년 대비 15% 이상 성장할 것으로 예상됩니다. " +
				"AI 칩 수요 급증과 메모리 반도체 시장의 회복이 주요 성장 동력입니다. " +
				"특히 HBM 시장은 AI 서버 수요 증가로 공급 부족 현상이 지속될 전망입니다.",
			KeyPoints: []string{
				"반도체 시장 15% 성장 예상",
				"HBM 공급 부족 지속",
				"AI 칩 수요 급증",
				"메모리 반도체 회복세",
			},
			ModelVersion: "gpt-4-turbo",
			CreatedAt:    ts("2024-03-10T14:30:00Z"),
			UpdatedAt:    ts("2024-03-10T14:30:00Z"),
		},
	}
}

func fixtureConversations() []models.Conversation {
	return []models.Conversation{
		{
			ID:                "conv-1",
			UserID:            fixtureUserID,
			Title:             "글로벌 경제 전망 질문",
			SessionType:       models.SessionReportBased,
			PrimaryDocumentID: "doc-1",
			IsActive:          true,
			CreatedAt:         ts("2024-04-01T10:00:00Z"),
			UpdatedAt:         ts("2024-04-01T10:35:00Z"),
		},
		{
			ID:          "conv-2",
			UserID:      fixtureUserID,
			Title:       "AI 투자 전략 문의",
			SessionType: models.SessionGeneral,
			IsActive:    true,
			CreatedAt:   ts("2024-04-02T14:00:00Z"),
			UpdatedAt:   ts("2024-04-02T15:20:00Z"),
		},
		{
			ID:                "conv-3",
			UserID:            fixtureUserID,
			Title:             "반도체 산업 분석",
			SessionType:       models.SessionReportBased,
			PrimaryDocumentID: "doc-3",
			IsActive:          true,
			CreatedAt:         ts("2024-04-05T09:00:00Z"),
			UpdatedAt:         ts("2024-04-05T09:45:00Z"),
		},
	}
}

func fixtureMessages() map[string][]models.Message {
	return map[string][]models.Message{
		"conv-1": {
			{
				ID:             "msg-1",
				ConversationID: "conv-1",
				Role:           models.RoleUser,
				Content:        "2024년 글로벌 경제 성장률은 어떻게 전망되나요?",
				CreatedAt:      ts("2024-04-01T10:00:00Z"),
			},
			{
				ID:             "msg-2",
				ConversationID: "conv-1",
				Role:           models.RoleAssistant,
				Content:        "보고서에 따르면 2024년 글로벌 GDP 성장률은 3.2%로 전망됩니다. 선진국 평균 1.8%, 신흥국 평균 4.5%로 아시아의 성장세가 가장 두드러질 것으로 예상됩니다.",
				FollowUpQuestions: []string{
					"각 지역별 성장률 차이의 원인은 무엇인가요?",
					"인플레이션 전망은 어떻게 되나요?",
					"투자 전략은 어떻게 세워야 하나요?",
				},
				ModelVersion: "gpt-4-turbo",
				CreatedAt:    ts("2024-04-01T10:01:30Z"),
			},
			{
				ID:             "msg-3",
				ConversationID: "conv-1",
				Role:           models.RoleUser,
				Content:        "인플레이션 전망은 어떻게 되나요?",
				CreatedAt:      ts("2024-04-01T10:05:00Z"),
			},
			{
				ID:             "msg-4",
				ConversationID: "conv-1",
				Role:           models.RoleAssistant,
				Content:        "인플레이션은 점진적으로 완화될 것으로 전망됩니다. 선진국은 3% 수준으로 하락하고 신흥국은 4-5% 범위를 유지할 것으로 보입니다.",
				FollowUpQuestions: []string{
					"중앙은행의 금리 인하 시점은 언제인가요?",
					"에너지 가격 전망은 어떻게 되나요?",
				},
				ModelVersion: "gpt-4-turbo",
				CreatedAt:    ts("2024-04-01T10:06:15Z"),
			},
		},
		"conv-2": {
			{
				ID:             "msg-5",
				ConversationID: "conv-2",
				Role:           models.RoleUser,
				Content:        "AI 관련 주식 투자 어떻게 해야 할까요?",
				CreatedAt:      ts("2024-04-02T14:00:00Z"),
			},
			{
				ID:             "msg-6",
				ConversationID: "conv-2",
				Role:           models.RoleAssistant,
				Content:        "반도체, 클라우드 인프라, AI 소프트웨어 섹터로 분산하는 전략을 제안드립니다. AI 산업은 장기 성장 산업으로 최소 3-5년 관점의 투자가 적합합니다.",
				FollowUpQuestions: []string{
					"국내 AI 기업 전망은 어떤가요?",
					"AI 버블 가능성은 없나요?",
				},
				ModelVersion: "gpt-4-turbo",
				CreatedAt:    ts("2024-04-02T14:02:45Z"),
			},
		},
		"conv-3": {
			{
				ID:             "msg-7",
				ConversationID: "conv-3",
				Role:           models.RoleUser,
				Content:        "HBM 시장 전망에 대해 알려주세요",
				CreatedAt:      ts("2024-04-05T09:00:00Z"),
			},
			{
				ID:             "msg-8",
				ConversationID: "conv-3",
				Role:           models.RoleAssistant,
				Content:        "HBM 시장은 AI 서버 수요 급증으로 폭발적 성장이 예상됩니다. 2024년 하반기까지 타이트한 공급이 이어질 전망입니다.",
				FollowUpQuestions: []string{
					"HBM3와 HBM4의 차이는 무엇인가요?",
					"국내 기업들의 경쟁력은 어떤가요?",
				},
				ModelVersion: "gpt-4-turbo",
				CreatedAt:    ts("2024-04-05T09:02:20Z"),
			},
		},
	}
}
