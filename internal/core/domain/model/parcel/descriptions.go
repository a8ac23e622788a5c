package parcel

import "fmt"

// StatusDescription produces the customer-facing Turkish event text for a
// status change. The courier name, when present, is masked via MaskName
// before interpolation.
func StatusDescription(status Status, courierName string) string {
	masked := MaskName(courierName)

	switch status {
	case StatusCreated:
		return "Siparişiniz için kargo kaydı oluşturuldu"
	case StatusAssigned:
		if masked != "" {
			return fmt.Sprintf("%s paketinizin teslimatı için görevlendirildi", masked)
		}
		return "Paketiniz kuryeye atandı"
	case StatusPickedUp:
		if masked != "" {
			return fmt.Sprintf("%s kargo merkezinden paketinizi aldı", masked)
		}
		return "Paketiniz kargo merkezinden alındı"
	case StatusInTransit:
		return "Paketiniz transfer merkezinden yola çıktı"
	case StatusOutForDelivery:
		if masked != "" {
			return fmt.Sprintf("%s paketinizi dağıtıma çıkardı", masked)
		}
		return "Paketiniz dağıtıma çıktı"
	case StatusDelivered:
		return "Paketiniz teslim edildi"
	case StatusCancelled:
		return "Gönderi iptal edildi"
	case StatusReturned:
		return "Paketiniz iade sürecine alındı"
	default:
		return "Kargo durumu güncellendi"
	}
}

// LocationDescription produces the masked, human-readable text for a courier
// GPS fix. Phrasing priority: county+village combined, then county alone,
// then village alone, then the generic city form, then a generic fallback
// when geocoding resolved nothing.
func LocationDescription(courierName, city, county, village string) string {
	masked := MaskName(courierName)
	if masked == "" {
		masked = "Kurye"
	}

	switch {
	case county != "" && village != "":
		return fmt.Sprintf("%s şu an %s ilçesi %s mahallesinde", masked, county, village)
	case county != "":
		return fmt.Sprintf("%s şu an %s ilçesinde", masked, county)
	case village != "":
		return fmt.Sprintf("%s şu an %s mahallesinde", masked, village)
	case city != "":
		return fmt.Sprintf("%s şu an %s şehrinde", masked, city)
	default:
		return fmt.Sprintf("%s şu an dağıtım bölgesinde", masked)
	}
}
