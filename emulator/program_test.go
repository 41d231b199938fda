package emulator_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/lc2k/cpu"
	"github.com/ezrec/lc2k/emulator"
)

func run(program ...string) *emulator.Emulator {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n") + "\n"))
	Expect(err).NotTo(HaveOccurred())

	emu := emulator.NewEmulator()
	Expect(emu.LoadProgram(prog)).To(Succeed())
	Expect(emu.Run()).To(Succeed())

	return emu
}

var _ = Describe("Emulator", func() {
	It("should multiply by repeated addition", func() {
		emu := run(
			"\tlw 0 1 mcand",
			"\tlw 0 2 mplier",
			"\tlw 0 4 neg1",
			"loop\tbeq 0 2 done",
			"\tadd 3 1 3",
			"\tadd 2 4 2",
			"\tbeq 0 0 loop",
			"done\thalt",
			"mcand\t.fill 32766",
			"mplier\t.fill 12",
			"neg1\t.fill -1",
		)

		Expect(emu.Cpu.Register[3]).To(Equal(int32(32766 * 12)))
		Expect(emu.Cpu.Register[2]).To(BeZero())
		Expect(emu.Ticks()).To(Equal(3 + 12*4 + 1 + 1))
	})

	It("should store and reload through negative offsets", func() {
		emu := run(
			"\tlw 0 1 base",
			"\tlw 0 2 val",
			"\tsw 1 2 -1",
			"\tlw 1 3 -1",
			"\thalt",
			"base\t.fill 20",
			"val\t.fill -1234",
		)

		Expect(emu.Cpu.Memory[19]).To(Equal(cpu.Word(-1234)))
		Expect(emu.Cpu.Register[3]).To(Equal(int32(-1234)))
		Expect(emu.Cpu.Loaded).To(Equal(7))
	})

	It("should link and return with jalr", func() {
		// jalr lands one past the target register value.
		emu := run(
			"\tlw 0 4 sub",
			"\tjalr 4 7",
			"\tadd 5 5 5",
			"\thalt",
			"\tnoop",
			"\tnor 0 0 5",
			"\tjalr 7 6",
			"sub\t.fill 4",
		)

		Expect(emu.Cpu.Register[7]).To(Equal(int32(2)))
		Expect(emu.Cpu.Register[6]).To(Equal(int32(7)))
		Expect(emu.Cpu.Register[5]).To(Equal(int32(-1)))
		Expect(emu.Cpu.Register[2]).To(BeZero())
		Expect(emu.Cpu.Pc).To(Equal(4))
		Expect(emu.Ticks()).To(Equal(5))
	})

	It("should write the link before reading the target", func() {
		emu := run(
			"\tjalr 1 1",
			"\tnor 0 0 2",
			"\thalt",
		)

		Expect(emu.Cpu.Register[1]).To(Equal(int32(1)))
		Expect(emu.Cpu.Register[2]).To(BeZero())
		Expect(emu.Ticks()).To(Equal(2))
	})

	It("should execute noop lines for blank source lines", func() {
		emu := run(
			"\tbeq 0 0 end",
			"",
			"end",
			"\thalt",
		)

		Expect(emu.Ticks()).To(Equal(3))
		Expect(emu.Check("pc == 4")).To(BeTrue())
	})
})
