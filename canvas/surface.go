package canvas

// Surface interaktif çizim yüzeyinin dar sözleşmesi. Gerçek iş
// (hit-test, render, serileştirme) dış kütüphanededir; bu çekirdek
// dokümanların içine hiç bakmaz, sadece taşır.
type Surface interface {
	// Clear yüzeydeki tüm nesneleri kaldırır.
	Clear()
	// LoadJSON serileştirilmiş dokümanı yüzeye açar. Hata durumunda
	// yüzey kütüphanenin bıraktığı kısmi durumda kalır, rollback yoktur.
	LoadJSON(doc []byte) error
	// Serialize yüzeyin güncel durumunu doküman olarak döner.
	Serialize() ([]byte, error)
	// Repaint yüzeyi yeniden çizdirir.
	Repaint()
	// Dispose yüzey kaynağını serbest bırakır. Dispose sonrası yüzey
	// kullanılamaz.
	Dispose()
}

// SurfaceFactory verilen boyutlarda yeni bir yüzey üretir.
type SurfaceFactory func(width, height int) Surface
