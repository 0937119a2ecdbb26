package lookup

// airportCities maps IATA airport codes to city names.
var airportCities = Table{
	// North America
	"ATL": "Atlanta",
	"LAX": "Los Angeles",
	"ORD": "Chicago",
	"DFW": "Dallas",
	"DEN": "Denver",
	"JFK": "New York",
	"LGA": "New York",
	"EWR": "Newark",
	"SFO": "San Francisco",
	"SEA": "Seattle",
	"LAS": "Las Vegas",
	"MCO": "Orlando",
	"MIA": "Miami",
	"BOS": "Boston",
	"IAH": "Houston",
	"PHX": "Phoenix",
	"CLT": "Charlotte",
	"MSP": "Minneapolis",
	"DTW": "Detroit",
	"PHL": "Philadelphia",
	"SLC": "Salt Lake City",
	"DCA": "Washington",
	"IAD": "Washington",
	"BWI": "Baltimore",
	"SAN": "San Diego",
	"TPA": "Tampa",
	"PDX": "Portland",
	"AUS": "Austin",
	"YYZ": "Toronto",
	"YVR": "Vancouver",
	"YUL": "Montreal",
	"MEX": "Mexico City",
	"CUN": "Cancun",

	// Europe
	"LHR": "London",
	"LGW": "London",
	"STN": "London",
	"CDG": "Paris",
	"ORY": "Paris",
	"AMS": "Amsterdam",
	"FRA": "Frankfurt",
	"MUC": "Munich",
	"MAD": "Madrid",
	"BCN": "Barcelona",
	"FCO": "Rome",
	"MXP": "Milan",
	"ZRH": "Zurich",
	"GVA": "Geneva",
	"VIE": "Vienna",
	"BRU": "Brussels",
	"CPH": "Copenhagen",
	"ARN": "Stockholm",
	"OSL": "Oslo",
	"HEL": "Helsinki",
	"DUB": "Dublin",
	"LIS": "Lisbon",
	"ATH": "Athens",
	"IST": "Istanbul",

	// Middle East & Africa
	"DXB": "Dubai",
	"AUH": "Abu Dhabi",
	"DOH": "Doha",
	"JED": "Jeddah",
	"RUH": "Riyadh",
	"CAI": "Cairo",
	"JNB": "Johannesburg",
	"CPT": "Cape Town",
	"NBO": "Nairobi",
	"ADD": "Addis Ababa",

	// Asia-Pacific
	"SIN": "Singapore",
	"HKG": "Hong Kong",
	"NRT": "Tokyo",
	"HND": "Tokyo",
	"ICN": "Seoul",
	"PEK": "Beijing",
	"PVG": "Shanghai",
	"CAN": "Guangzhou",
	"TPE": "Taipei",
	"BKK": "Bangkok",
	"KUL": "Kuala Lumpur",
	"CGK": "Jakarta",
	"DPS": "Denpasar",
	"MNL": "Manila",
	"SGN": "Ho Chi Minh City",
	"HAN": "Hanoi",
	"DEL": "Delhi",
	"BOM": "Mumbai",
	"BLR": "Bengaluru",
	"MAA": "Chennai",
	"CMB": "Colombo",
	"DAC": "Dhaka",
	"KHI": "Karachi",
	"LHE": "Lahore",
	"ISB": "Islamabad",
	"SYD": "Sydney",
	"MEL": "Melbourne",
	"BNE": "Brisbane",
	"AKL": "Auckland",

	// South America
	"GRU": "Sao Paulo",
	"GIG": "Rio de Janeiro",
	"EZE": "Buenos Aires",
	"BOG": "Bogota",
	"LIM": "Lima",
	"SCL": "Santiago",
}

// carrierNames maps two-character IATA carrier codes to airline names.
var carrierNames = Table{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"B6": "JetBlue Airways",
	"AS": "Alaska Airlines",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"AC": "Air Canada",
	"AM": "Aeromexico",
	"BA": "British Airways",
	"VS": "Virgin Atlantic",
	"AF": "Air France",
	"KL": "KLM Royal Dutch Airlines",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"OS": "Austrian Airlines",
	"SN": "Brussels Airlines",
	"IB": "Iberia",
	"VY": "Vueling",
	"AZ": "ITA Airways",
	"SK": "Scandinavian Airlines",
	"AY": "Finnair",
	"EI": "Aer Lingus",
	"TP": "TAP Air Portugal",
	"TK": "Turkish Airlines",
	"A3": "Aegean Airlines",
	"LO": "LOT Polish Airlines",
	"EK": "Emirates",
	"EY": "Etihad Airways",
	"QR": "Qatar Airways",
	"SV": "Saudia",
	"GF": "Gulf Air",
	"WY": "Oman Air",
	"MS": "EgyptAir",
	"ET": "Ethiopian Airlines",
	"KQ": "Kenya Airways",
	"SA": "South African Airways",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"NH": "All Nippon Airways",
	"JL": "Japan Airlines",
	"KE": "Korean Air",
	"OZ": "Asiana Airlines",
	"CA": "Air China",
	"MU": "China Eastern Airlines",
	"CZ": "China Southern Airlines",
	"CI": "China Airlines",
	"BR": "EVA Air",
	"TG": "Thai Airways",
	"MH": "Malaysia Airlines",
	"GA": "Garuda Indonesia",
	"PR": "Philippine Airlines",
	"VN": "Vietnam Airlines",
	"AI": "Air India",
	"6E": "IndiGo",
	"UK": "Vistara",
	"UL": "SriLankan Airlines",
	"BG": "Biman Bangladesh Airlines",
	"PK": "Pakistan International Airlines",
	"PA": "Airblue",
	"ER": "Serene Air",
	"PF": "Air Sial",
	"QF": "Qantas",
	"NZ": "Air New Zealand",
	"LA": "LATAM Airlines",
	"AV": "Avianca",
	"CM": "Copa Airlines",
	"AR": "Aerolineas Argentinas",
	"FZ": "flydubai",
	"XY": "flynas",
	"J9": "Jazeera Airways",
	"FR": "Ryanair",
	"U2": "easyJet",
	"W6": "Wizz Air",
	"PC": "Pegasus Airlines",
	"AK": "AirAsia",
	"JT": "Lion Air",
	"ID": "Batik Air",
	"5J": "Cebu Pacific",
	"TR": "Scoot",
}

// aircraftNames maps upstream equipment codes to aircraft model names.
var aircraftNames = Table{
	"221": "Airbus A220-100",
	"223": "Airbus A220-300",
	"318": "Airbus A318",
	"319": "Airbus A319",
	"320": "Airbus A320",
	"321": "Airbus A321",
	"32A": "Airbus A320",
	"32B": "Airbus A321",
	"32N": "Airbus A320neo",
	"32Q": "Airbus A321neo",
	"332": "Airbus A330-200",
	"333": "Airbus A330-300",
	"338": "Airbus A330-800neo",
	"339": "Airbus A330-900neo",
	"343": "Airbus A340-300",
	"346": "Airbus A340-600",
	"351": "Airbus A350-1000",
	"359": "Airbus A350-900",
	"388": "Airbus A380-800",
	"717": "Boeing 717-200",
	"737": "Boeing 737",
	"738": "Boeing 737-800",
	"739": "Boeing 737-900",
	"73H": "Boeing 737-800",
	"7M8": "Boeing 737 MAX 8",
	"7M9": "Boeing 737 MAX 9",
	"744": "Boeing 747-400",
	"748": "Boeing 747-8",
	"752": "Boeing 757-200",
	"753": "Boeing 757-300",
	"763": "Boeing 767-300",
	"764": "Boeing 767-400",
	"772": "Boeing 777-200",
	"773": "Boeing 777-300",
	"77L": "Boeing 777-200LR",
	"77W": "Boeing 777-300ER",
	"787": "Boeing 787",
	"788": "Boeing 787-8",
	"789": "Boeing 787-9",
	"78X": "Boeing 787-10",
	"AT7": "ATR 72",
	"AT5": "ATR 42",
	"DH4": "De Havilland Dash 8-400",
	"E75": "Embraer E175",
	"E90": "Embraer E190",
	"E95": "Embraer E195",
	"CR9": "Bombardier CRJ-900",
	"CRJ": "Bombardier CRJ",
}
