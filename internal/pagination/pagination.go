package pagination

// Pager: Sıralı bir koleksiyon üzerinde sayfa penceresi. Sayfa numaraları
// 1'den başlar. Filtre değiştiğinde çağıran taraf ResetToFirstPage çağırmak
// zorundadır, yoksa boş bir sayfada kalınabilir.
type Pager[T any] struct {
	data           []T
	recordsPerPage int
	currentPage    int
}

func New[T any](data []T, recordsPerPage int) *Pager[T] {
	if recordsPerPage < 1 {
		recordsPerPage = 1
	}
	return &Pager[T]{
		data:           data,
		recordsPerPage: recordsPerPage,
		currentPage:    1,
	}
}

func (p *Pager[T]) CurrentPage() int {
	return p.currentPage
}

// TotalPages: ceil(len/recordsPerPage). Boş koleksiyonda 0 döner.
func (p *Pager[T]) TotalPages() int {
	return (len(p.data) + p.recordsPerPage - 1) / p.recordsPerPage
}

func (p *Pager[T]) IndexOfFirstRecord() int {
	return (p.currentPage - 1) * p.recordsPerPage
}

func (p *Pager[T]) IndexOfLastRecord() int {
	return p.currentPage * p.recordsPerPage
}

// CurrentRecords: Geçerli sayfanın dilimi, koleksiyon sınırlarına kırpılır.
// Aralık dışı bir sayfada boş dilim döner.
func (p *Pager[T]) CurrentRecords() []T {
	first := p.IndexOfFirstRecord()
	last := p.IndexOfLastRecord()

	if first < 0 || first >= len(p.data) {
		return []T{}
	}
	if last > len(p.data) {
		last = len(p.data)
	}
	return p.data[first:last]
}

// Paginate: Doğrudan sayfa atlar. Sınır kontrolü yapmaz; aralık dışı değerde
// CurrentRecords boş döner, UI'nin navigasyonu devre dışı bırakması beklenir.
func (p *Pager[T]) Paginate(page int) {
	p.currentPage = page
}

// NextPage: Son sayfadan ileri gitmez.
func (p *Pager[T]) NextPage() {
	if p.currentPage < p.TotalPages() {
		p.currentPage++
	}
}

// PrevPage: İlk sayfadan geri gitmez.
func (p *Pager[T]) PrevPage() {
	if p.currentPage > 1 {
		p.currentPage--
	}
}

func (p *Pager[T]) ResetToFirstPage() {
	p.currentPage = 1
}

// SetData: Alttaki koleksiyonu değiştirir. Filtre değiştiyse çağıran taraf
// ayrıca ResetToFirstPage çağırmalı.
func (p *Pager[T]) SetData(data []T) {
	p.data = data
}
