package images

import "strings"

// GenericCityImage is the last stage of the fallback chain. Resolve never
// returns anything weaker than this URL.
const GenericCityImage = "https://images.pexels.com/photos/466685/pexels-photo-466685.jpeg?auto=compress&w=800"

// cityImageMap is the curated city/landmark -> stock photo table used when no
// provider is configured or every provider query came back empty.
var cityImageMap = map[string]string{
	"北京":    "https://images.pexels.com/photos/208736/pexels-photo-208736.jpeg?auto=compress&w=800",
	"北京 地标": "https://images.pexels.com/photos/208736/pexels-photo-208736.jpeg?auto=compress&w=800",
	"故宫":    "https://images.pexels.com/photos/208736/pexels-photo-208736.jpeg?auto=compress&w=800",
	"长城":    "https://images.pexels.com/photos/2893685/pexels-photo-2893685.jpeg?auto=compress&w=800",
	"天坛":    "https://images.pexels.com/photos/1486222/pexels-photo-1486222.jpeg?auto=compress&w=800",
	"上海":    "https://images.pexels.com/photos/2412609/pexels-photo-2412609.jpeg?auto=compress&w=800",
	"外滩":    "https://images.pexels.com/photos/2412609/pexels-photo-2412609.jpeg?auto=compress&w=800",
	"东方明珠":  "https://images.pexels.com/photos/2412611/pexels-photo-2412611.jpeg?auto=compress&w=800",
	"杭州":    "https://images.pexels.com/photos/2096750/pexels-photo-2096750.jpeg?auto=compress&w=800",
	"西湖":    "https://images.pexels.com/photos/2096750/pexels-photo-2096750.jpeg?auto=compress&w=800",
	"广州":    "https://images.pexels.com/photos/2412610/pexels-photo-2412610.jpeg?auto=compress&w=800",
	"深圳":    "https://images.pexels.com/photos/2662116/pexels-photo-2662116.jpeg?auto=compress&w=800",
	"成都":    "https://images.pexels.com/photos/2901046/pexels-photo-2901046.jpeg?auto=compress&w=800",
	"西安":    "https://images.pexels.com/photos/3889855/pexels-photo-3889855.jpeg?auto=compress&w=800",
	"南京":    "https://images.pexels.com/photos/2850287/pexels-photo-2850287.jpeg?auto=compress&w=800",
	"重庆":    "https://images.pexels.com/photos/2846217/pexels-photo-2846217.jpeg?auto=compress&w=800",
	"天津":    "https://images.pexels.com/photos/1486222/pexels-photo-1486222.jpeg?auto=compress&w=800",
	"苏州":    "https://images.pexels.com/photos/2901215/pexels-photo-2901215.jpeg?auto=compress&w=800",
}

// cityQueryMap translates a city keyword into an English landmark query for
// the secondary provider, which indexes English terms far better than CJK.
var cityQueryMap = map[string]string{
	"北京":  "beijing tiananmen square",
	"上海":  "shanghai oriental pearl tower",
	"杭州":  "hangzhou west lake pagoda",
	"广州":  "guangzhou canton tower night",
	"深圳":  "shenzhen ping an tower",
	"成都":  "chengdu giant panda",
	"西安":  "xian bell tower ancient",
	"南京":  "nanjing confucius temple",
	"重庆":  "chongqing hongya cave",
	"天津":  "tianjin eye ferris wheel",
	"苏州":  "suzhou classical garden",
	"武汉":  "wuhan yellow crane tower",
	"长沙":  "changsha orange island",
	"济南":  "jinan daming lake",
	"哈尔滨": "harbin saint sophia cathedral",
	"青岛":  "qingdao zhan bridge seaside",
	"厦门":  "xiamen gulangyu island",
	"大连":  "dalian xinghai square",
	"沈阳":  "shenyang imperial palace",
	"昆明":  "kunming dianchi lake",
	"桂林":  "guilin lijiang river landscape",
	"三亚":  "sanya tianya haijiao beach",
	"拉萨":  "lhasa potala palace",
}

// landmarkQueryMap translates the landmark hint returned by the model into an
// English provider query. Used during enrichment before the chain runs.
var landmarkQueryMap = map[string]string{
	"天安门":   "tiananmen square",
	"故宫":    "forbidden city beijing",
	"长城":    "great wall china",
	"天坛":    "temple of heaven",
	"颐和园":   "summer palace beijing",
	"东方明珠":  "oriental pearl tower",
	"外滩":    "the bund shanghai",
	"西湖":    "west lake hangzhou",
	"雷峰塔":   "leifeng pagoda",
	"小蛮腰":   "canton tower guangzhou",
	"广州塔":   "canton tower night",
	"天津之眼":  "tianjin eye ferris wheel",
	"索菲亚教堂": "saint sophia cathedral harbin",
	"中央大街":  "zhongyang street harbin",
	"太阳岛":   "sun island harbin",
	"冰雪大世界": "harbin ice festival",
	"大明湖":   "daming lake jinan",
	"趵突泉":   "baotu spring jinan",
	"千佛山":   "qianfo mountain",
	"黄鹤楼":   "yellow crane tower",
	"钟楼":    "bell tower xian",
	"大雁塔":   "giant wild goose pagoda",
	"兵马俑":   "terracotta warriors",
	"洪崖洞":   "hongya cave chongqing",
	"朝天门":   "chaotianmen chongqing",
	"鼓浪屿":   "gulangyu island",
	"布达拉宫":  "potala palace lhasa",
}

// hotelImagePool is the stock pool used when no provider query found a hotel
// photo. Picked pseudo-randomly, not cryptographically.
var hotelImagePool = []string{
	"https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg?auto=compress&w=800",
	"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&w=800",
	"https://images.pexels.com/photos/271639/pexels-photo-271639.jpeg?auto=compress&w=800",
	"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&w=800",
	"https://images.pexels.com/photos/262048/pexels-photo-262048.jpeg?auto=compress&w=800",
}

// hotelFallbackQueries are generic English hotel queries retried in order when
// a hotel keyword itself produced no provider results.
var hotelFallbackQueries = []string{
	"luxury hotel lobby",
	"hotel room interior",
	"five star hotel",
}

// hotelBrands lists known hospitality brands, localized and transliterated.
// Order matters only in that the first match wins.
var hotelBrands = []string{
	"希尔顿", "万豪", "喜来登", "凯悦", "香格里拉", "洲际", "皇冠假日",
	"威斯汀", "万丽", "索菲特", "铂尔曼", "诺富特", "美居",
	"丽思卡尔顿", "瑞吉", "宝格丽", "安缦", "悦榕庄", "文华东方",
	"四季", "半岛", "康莱德", "华尔道夫", "柏悦", "艾迪逊",
	"凯宾斯基", "费尔蒙", "朗廷", "丽晶", "璞丽", "JW万豪",
	"Hilton", "Marriott", "Sheraton", "Hyatt", "InterContinental",
	"Westin", "Sofitel", "Ritz-Carlton", "Four Seasons",
}

// lookupCityImage returns the curated image for a city keyword. Exact match
// first, then fuzzy: the keyword contains a known city, or a known city
// contains the keyword's first token.
func lookupCityImage(keyword string) (string, bool) {
	if url, ok := cityImageMap[keyword]; ok {
		return url, true
	}
	first := keyword
	if fields := strings.Fields(keyword); len(fields) > 0 {
		first = fields[0]
	}
	for city, url := range cityImageMap {
		if strings.Contains(keyword, city) || (first != "" && strings.Contains(city, first)) {
			return url, true
		}
	}
	return "", false
}

// LandmarkQuery translates a landmark hint into an English provider query.
func LandmarkQuery(landmark string) (string, bool) {
	q, ok := landmarkQueryMap[landmark]
	return q, ok
}

// HotelQuery derives the provider query for a hotel. A recognized brand in the
// free-text name wins ("瑞吉金融街酒店" -> "瑞吉 hotel"), otherwise the query
// degrades to the city.
func HotelQuery(name, city string) string {
	for _, brand := range hotelBrands {
		if strings.Contains(name, brand) {
			return brand + " hotel"
		}
	}
	return city + " luxury hotel"
}
