package domain

// Типы компании для прогулки.
const (
	CompanionSolo    = "solo"
	CompanionCouple  = "couple"
	CompanionFriends = "friends"
	CompanionFamily  = "family"
)

// CompanionTypes — доступные типы компании в порядке показа пользователю.
var CompanionTypes = []string{CompanionSolo, CompanionCouple, CompanionFriends, CompanionFamily}

// BudgetLevels — уровни бюджета по возрастанию.
var BudgetLevels = []string{"low", "medium", "high"}

// DefaultOrigin — точка старта по умолчанию (район Хондэ, Сеул).
var DefaultOrigin = LatLng{Lat: 37.5563, Lng: 126.9237}

// DefaultOriginName — название точки старта по умолчанию.
const DefaultOriginName = "홍대입구"

// DefaultStartHour — час начала прогулки по умолчанию (12:00).
const DefaultStartHour = 12

// UserSelectableCategories — базовые категории, которые пользователь
// выбирает вручную.
var UserSelectableCategories = []string{
	"Cafe", "Restaurant", "Park", "Cinema", "Mall", "Cultural Spot",
}

// CompanionCategories — подобранные категории под тип компании.
// Ключевые слова на корейском: поисковый провайдер (Kakao) ищет по ним.
var CompanionCategories = map[string][]string{
	CompanionFamily: {
		"박물관", "놀이공원", "동물원", "수족관", "과학관", "패밀리 레스토랑", "재래시장",
		"공원", "아이스크림 가게", "도서관", "체험학습장", "키즈카페", "가족영화관", "놀이터",
		"전통문화체험관", "자연사박물관", "천문대", "식물원", "동물농장", "워터파크",
	},
	CompanionFriends: {
		"게임카페", "방탈출 카페", "코인노래방", "보드게임카페", "펍", "테마카페",
		"노래방", "PC방", "만화카페", "보드게임방", "VR체험관", "실내운동시설", "볼링장",
		"당구장", "다트바", "퀴즈카페", "마술카페", "포토존", "팝업스토어", "플리마켓",
	},
	CompanionCouple: {
		"데이트 스팟", "야경 좋은 곳", "분위기 좋은 카페", "분위기 좋은 식당", "테마카페", "미술관", "전시회",
		"로맨틱 레스토랑", "와인바", "칵테일바", "디저트카페", "스파", "마사지샵", "한복체험관",
		"사진관", "영화관", "공연장", "콘서트홀", "갤러리", "문화센터", "힐링카페", "분위기 좋은 술집",
	},
	CompanionSolo: {
		"산책길", "조용한 카페", "독립서점", "명상센터", "사진 전시회", "한적한 공원", "미술관", "전시회",
		"도서관", "독서실", "스터디카페", "요가센터", "필라테스", "헬스장", "수영장", "탁구장",
		"테니스장", "골프연습장", "등산로", "자전거도로", "조깅코스", "명상숲", "힐링센터", "아로마테라피",
	},
}

// VarietyCategories — дополнительные категории для разнообразия маршрута.
var VarietyCategories = []string{
	"테마카페", "문화시설", "관광명소", "공원", "쇼핑", "엔터테인먼트",
}

// DefaultCategories — запасные категории для минимального разнообразия.
var DefaultCategories = []string{
	"Cafe", "Restaurant", "문화시설", "관광명소",
}
